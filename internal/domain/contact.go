package domain

import (
	"context"
	"strings"
)

// Category classifies a contact inquiry and selects its destination mailbox.
type Category string

const (
	CategoryProfessional Category = "professional"
	CategoryPersonal     Category = "personal"
	CategoryEducational  Category = "educational"
)

// NormalizeCategory maps arbitrary input to a known category. Matching is
// case-insensitive; empty or unrecognized values fall back to professional.
func NormalizeCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryPersonal:
		return CategoryPersonal
	case CategoryEducational:
		return CategoryEducational
	default:
		return CategoryProfessional
	}
}

// ContactRequest represents a contact form submission as received from the
// site. EmailType is the optional inquiry category.
type ContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,contact_email"`
	Message   string `json:"message" validate:"required"`
	EmailType string `json:"emailType"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates and dispatches a contact form message,
	// returning the transport message id on success.
	SubmitContact(ctx context.Context, req *ContactRequest) (string, error)
}
