// Package tokenize splits a text fragment into candidate words for the word
// cloud.
//
// Tokenize normalizes the text to NFC, replaces every rune that is not a
// letter, digit or whitespace with a space, splits on whitespace and keeps
// tokens of at least three runes that are not stop words. The original casing
// of each token is kept.
package tokenize
