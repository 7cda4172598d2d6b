package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// VerificationRepo returns a VerificationRepository bound to the current transaction.
	VerificationRepo() VerificationRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// EnquiryRepo returns an EnquiryRepository bound to the current transaction.
	EnquiryRepo() EnquiryRepository

	// PincodeRepo returns a PincodeRepository bound to the current transaction.
	PincodeRepo() PincodeRepository
}

// ListParams carries pagination and free-text search for list queries.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

// Offset returns the row offset for the current page.
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * p.Limit()
}

// Limit returns the page size, defaulting to 10.
func (p ListParams) Limit() int {
	if p.PerPage < 1 {
		return 10
	}

	return p.PerPage
}
