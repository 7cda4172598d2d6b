package service

import "context"

// ImageUpload is one raw image to be stored for a product.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageStore persists raw image bytes and returns publicly addressable URLs.
// The resize/optimize pipeline behind it is an external collaborator.
type ImageStore interface {
	// Store uploads the images under the given key prefix and returns their
	// URLs in input order.
	Store(ctx context.Context, keyPrefix string, uploads []ImageUpload) ([]string, error)
}
