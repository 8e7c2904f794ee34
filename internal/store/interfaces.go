package store

import (
	"context"

	"github.com/MKhiriev/go-api-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OverrideReader reads persisted overrides. It is the only view of the store
// that URL resolution gets, so resolution can never write.
type OverrideReader interface {
	// GetOverride returns the value stored under key, or
	// [ErrOverrideNotFound] when nothing is stored.
	GetOverride(ctx context.Context, key string) (string, error)
}

// OverrideWriter pins and unpins overrides.
type OverrideWriter interface {
	SetOverride(ctx context.Context, key, value string) error
	ClearOverride(ctx context.Context, key string) error
}

// OverrideRepository is the full persisted override store.
type OverrideRepository interface {
	OverrideReader
	OverrideWriter
	ListOverrides(ctx context.Context) ([]models.Override, error)
}
