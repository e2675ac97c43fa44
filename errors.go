package genindex

import (
	"errors"

	"github.com/alnah/go-genindex/internal/pipeline"
)

// Sentinel errors for library operations.
// The document errors share identity with the pipeline sentinels so that
// errors.Is matches wherever the failure originated.
var (
	ErrHeadingNotFound   = pipeline.ErrHeadingNotFound
	ErrMalformedListItem = pipeline.ErrMalformedListItem

	// Generator configuration errors.
	ErrInvalidHeading = errors.New("heading must be a markdown heading line")
)
