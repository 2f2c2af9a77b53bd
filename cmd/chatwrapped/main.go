// Package main provides the entry point for the chatwrapped CLI.
//
// chatwrapped renders a "year in review" summary of a chat history, either
// from a built-in dataset (Memory Mode) or from any JSON export (Data Mode).
// Everything is computed locally.
//
// Usage:
//
//	chatwrapped memory
//	chatwrapped import conversations.json
//	chatwrapped session
//
// See --help for all available options.
package main

// main is the entry point for chatwrapped.
func main() {
	Execute()
}
