package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrEnquiryNotFound is returned when an enquiry is not found.
var ErrEnquiryNotFound = errors.New("enquiry not found")

// EnquiryRepository defines the interface for business enquiry persistence.
type EnquiryRepository interface {
	// Create persists a new enquiry.
	Create(ctx context.Context, enquiry *entity.Enquiry) error

	// FindByID retrieves an enquiry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error)

	// List retrieves a page of enquiries, unanswered first then newest,
	// and the total match count. Search filters across company, contact,
	// email, phone and business need.
	List(ctx context.Context, params ListParams) ([]*entity.Enquiry, int64, error)

	// Update saves an existing enquiry.
	Update(ctx context.Context, enquiry *entity.Enquiry) error

	// Delete removes an enquiry by ID. Returns ErrEnquiryNotFound when no
	// row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
