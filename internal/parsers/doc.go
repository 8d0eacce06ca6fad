// Package parsers implements the parser catalog and its selection logic.
// Parser and plugin implementations register themselves at init time; the
// selection entry point FindAllParsers picks the active subset for a filter
// expression. This package is internal; external consumers should use the
// stable facade in pkg/core.
package parsers
