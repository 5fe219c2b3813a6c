package wikipedia

import "errors"

// Wikipedia-specific errors.
var (
	// ErrMissingPages indicates the response had no query.pages array.
	ErrMissingPages = errors.New("wikipedia: response has no query.pages")
)
