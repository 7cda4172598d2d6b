// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferType is the discount scheme attached to a product.
type OfferType string

const (
	// OfferPercentage discounts by a percentage of the list price.
	OfferPercentage OfferType = "PERCENTAGE"
	// OfferPriceOff discounts by a flat amount off the list price.
	OfferPriceOff OfferType = "PRICE_OFF"
)

// IsValid checks if the OfferType is a valid value.
func (t OfferType) IsValid() bool {
	switch t {
	case OfferPercentage, OfferPriceOff:
		return true
	default:
		return false
	}
}

// DealType tags a product for storefront deal sections.
type DealType string

const (
	// DealHot marks trending products.
	DealHot DealType = "HOT_DEAL"
	// DealNew marks recently added products.
	DealNew DealType = "NEW_ARRIVAL"
	// DealSeason marks seasonal promotions.
	DealSeason DealType = "SEASONAL"
	// DealCombo marks bundled offers.
	DealCombo DealType = "COMBO"
)

// ProductContent is one structured key/value row describing a product,
// e.g. {"Net Weight", "500g"}.
type ProductContent struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product is a catalog item. The slug is derived from the name plus the
// creation timestamp so two products with the same name never collide.
type Product struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	Price        float64
	OfferType    *OfferType
	OfferValue   *float64
	OfferedPrice float64 // Precomputed from Price/OfferType/OfferValue.
	Stocks       int
	Contents     []ProductContent
	DealTypes    []DealType
	CategoryID   uuid.UUID
	CreatedByID  uuid.UUID // Admin who created the product.
	Images       []*ProductImage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrimaryImageURL returns the URL of the primary image, or the first image
// when no primary flag is set, or empty when the product has no images.
func (p *Product) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}

	return p.Images[0].URL
}

// ProductImage is a stored image URL for a product. Exactly one image is
// flagged primary at upload time.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	IsPrimary bool
	Position  int
	CreatedAt time.Time
}
