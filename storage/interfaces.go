package storage

import (
	"context"

	"careeriq/models"
)

// ListingWriter is the interface any canonical storage backend must satisfy.
type ListingWriter interface {
	Write(ctx context.Context, listings []models.CanonicalListing) error
	Close() error
}

// ListingReader returns a previously persisted canonical snapshot.
type ListingReader interface {
	FetchAll(ctx context.Context) ([]models.CanonicalListing, error)
}
