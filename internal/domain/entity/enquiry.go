// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry is a business enquiry submitted through the public site.
type Enquiry struct {
	ID            uuid.UUID
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	BusinessNeed  string
	Responded     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
