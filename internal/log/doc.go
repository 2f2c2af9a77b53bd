// Package log provides privacy-preserving logging built on top of the standard
// slog package.
//
// Imported chat exports contain the user's private conversations. The
// PrivateHandler keeps that text out of log output:
//   - string attributes with chat-text keys (content, text, message, prompt,
//     fragment, ...) are replaced by a length marker such as "[42 chars]"
//   - credentials are masked by key name (token, api_key, password, ...)
//     or by value pattern (bearer tokens, JWTs, API keys, private keys)
//
// Masking also applies in verbose mode, so debug logs can be shared.
//
// # Usage
//
//	logger := log.NewPrivateLogger(os.Stderr, verbose)
//	logger.Debug("fragment skipped", "fragment", text) // fragment=[17 chars]
//	slog.SetDefault(logger)
package log
