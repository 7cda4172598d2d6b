package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateEnquiryInput is a business enquiry submitted from the public site.
type CreateEnquiryInput struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,len=10,numeric"`
	BusinessNeed  string `json:"business_need" validate:"required,max=2000"`
}

// EnquiryListOutput is one page of enquiries for the admin panel.
type EnquiryListOutput struct {
	Enquiries []*entity.Enquiry `json:"enquiries"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PerPage   int               `json:"per_page"`
}

// EnquiryUsecase collects business enquiries. Submission is public and
// unauthenticated; listing and lifecycle updates are admin-only.
type EnquiryUsecase interface {
	SubmitEnquiry(ctx context.Context, input *CreateEnquiryInput) (*entity.Enquiry, error)
	ListEnquiries(ctx context.Context, params repository.ListParams) (*EnquiryListOutput, error)
	GetEnquiry(ctx context.Context, enquiryID uuid.UUID) (*entity.Enquiry, error)
	MarkResponded(ctx context.Context, enquiryID uuid.UUID, responded bool) (*entity.Enquiry, error)
	DeleteEnquiry(ctx context.Context, enquiryID uuid.UUID) error
}
