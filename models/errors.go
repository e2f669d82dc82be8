package models

import "errors"

// Sentinel errors shared across packages. Check with errors.Is.
var (
	// ErrInvalidAsset indicates a record is missing a field or has an out of range value
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrDuplicateAsset indicates two records share a name
	ErrDuplicateAsset = errors.New("duplicate asset name")

	// ErrEmptyCatalog indicates a catalog with no assets
	ErrEmptyCatalog = errors.New("catalog has no assets")

	// ErrAssetNotFound indicates a lookup by name found nothing
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInsufficientComparison indicates fewer than two asset names were mentioned
	ErrInsufficientComparison = errors.New("need two assets to compare")
)
