// Package domain defines the core business entities for corpusfetch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalised corpus record (title, content, source, url)
//   - Corpus: The ordered, append-only collection produced by one run
//   - FetchResult: The per-key outcome reported by a connector
//   - FetchSettings: Typed run configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
