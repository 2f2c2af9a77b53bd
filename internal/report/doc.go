// Package report renders a wrapped dataset.
//
// This package contains writers for different output formats:
//   - SimpleWriter: sectioned text for terminal display
//   - JSONWriter: the dataset as JSON, in the field layout of the data contract
//   - MarkdownWriter: a shareable Markdown document with a Mermaid pie chart
//
// Writers implement the Writer interface and can be combined with
// MultiWriter.
package report
