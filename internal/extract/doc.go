// Package extract walks an arbitrary JSON document and collects the text
// fragments worth classifying.
//
// Traversal is depth-first and bounded. Strings are collected wherever they
// appear; for objects, the values of a few well-known field names (text,
// content, message, ...) are collected first, then every member value is
// walked generically. A string reachable both ways is seen twice and the
// second push is dropped by deduplication.
//
// Deduplication keys on the first KeyLength runes of a fragment, not on a
// content hash: two long fragments sharing the same prefix count as one.
package extract
