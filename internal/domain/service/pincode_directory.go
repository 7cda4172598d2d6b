package service

import (
	"context"

	"ayurfresh/internal/domain/entity"
)

// PincodeDirectory resolves a postal pincode to its post-office areas using
// an external postal directory API.
type PincodeDirectory interface {
	// Lookup returns the areas for a pincode. An unknown pincode returns an
	// empty slice, not an error.
	Lookup(ctx context.Context, pincode string) ([]entity.PincodeArea, error)
}
