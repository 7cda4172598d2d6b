package model

import (
	"time"

	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Name and slug are unique.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Slug        string    `gorm:"type:varchar(120);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Contents and deal types are
// stored as jsonb through the GORM JSON serializer.
type ProductModel struct {
	ID           uuid.UUID               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string                  `gorm:"type:varchar(255);not null"`
	Slug         string                  `gorm:"type:varchar(300);unique;not null"`
	Description  string                  `gorm:"type:text;not null"`
	Price        float64                 `gorm:"type:decimal(10,2);not null"`
	OfferType    *string                 `gorm:"type:varchar(20)"`
	OfferValue   *float64                `gorm:"type:decimal(10,2)"`
	OfferedPrice float64                 `gorm:"type:decimal(10,2);not null"`
	Stocks       int                     `gorm:"not null;default:0"`
	Contents     []entity.ProductContent `gorm:"type:jsonb;serializer:json"`
	DealTypes    []string                `gorm:"type:jsonb;serializer:json"`
	CategoryID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID               `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Images []*ProductImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
