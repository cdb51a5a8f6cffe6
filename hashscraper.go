// Package hashscraper fetches web pages through a rendering backend and turns
// their HTML into compact, de-duplicated Markdown or plain text for language
// models.
//
// This package contains domain types, interfaces and the pure text
// normalization routines, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., readability/, htmltomarkdown/, rod/).
package hashscraper
