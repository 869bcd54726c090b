package domain

import (
	"context"
	"time"
)

const (
	NameMaxLength    = 120
	MessageMinLength = 5
	MessageMaxLength = 5000

	// ContactCollection is the collection (mongo) or table (postgres) holding submissions
	ContactCollection = "contact"
)

// ContactInput is the raw JSON payload of POST /contact, before validation
type ContactInput struct {
	Name    string  `json:"name" example:"Ana"`
	Email   string  `json:"email" example:"ana@example.com"`
	Company *string `json:"company,omitempty" example:"Acme"`
	Budget  *string `json:"budget,omitempty" example:"10k-25k"`
	Message string  `json:"message" example:"Hello there"`
}

// ContactSubmission is a validated contact form submission. Only the
// validation package constructs it.
type ContactSubmission struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Company   *string   `json:"company,omitempty" bson:"company,omitempty"`
	Budget    *string   `json:"budget,omitempty" bson:"budget,omitempty"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContactResult is the success body of POST /contact. ID is null when the
// submission was accepted without a store.
type ContactResult struct {
	Status string  `json:"status" example:"ok"`
	Name   string  `json:"name" example:"Ana"`
	ID     *string `json:"id"`
}

// ContactRepository persists submissions as documents and returns the generated id
type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) (string, error)
}

// ContactNotifier is told about accepted submissions. Failures are logged, never surfaced.
type ContactNotifier interface {
	Name() string
	NotifyContact(ctx context.Context, submission *ContactSubmission, id *string) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit persists (when a store is configured) an already validated submission
	Submit(ctx context.Context, submission *ContactSubmission) (*ContactResult, error)
}
