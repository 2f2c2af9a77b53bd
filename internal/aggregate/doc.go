// Package aggregate turns extracted text fragments into a normalized dataset.
//
// Every fragment is classified into one topic and split into words. The five
// highest ranked topics, excluding the catch-all, receive integer weights
// that sum to 100, and the most frequent words become the word cloud. The
// result is merged into the built-in baseline so panels that cannot be
// computed from data keep their static content.
package aggregate
