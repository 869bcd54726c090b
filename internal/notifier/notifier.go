package notifier

import (
	"context"
	"time"

	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/email"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type contactMailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
}

type emailNotifier struct {
	mailer contactMailer
}

// NewEmailNotifier forwards accepted submissions to the contact inbox
func NewEmailNotifier(mailer contactMailer) domain.ContactNotifier {
	return &emailNotifier{mailer: mailer}
}

func (n *emailNotifier) Name() string { return "email" }

func (n *emailNotifier) NotifyContact(ctx context.Context, submission *domain.ContactSubmission, id *string) error {
	return n.mailer.SendContactEmail(ctx, email.ContactEmailData{
		SenderName:  submission.Name,
		SenderEmail: submission.Email,
		Company:     deref(submission.Company),
		Budget:      deref(submission.Budget),
		Message:     submission.Message,
		DocumentID:  deref(id),
	})
}

// ContactSubmittedEvent is the message body published for each accepted submission
type ContactSubmittedEvent struct {
	ID          *string   `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company,omitempty"`
	Budget      *string   `json:"budget,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type eventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type queueNotifier struct {
	publisher eventPublisher
}

func NewQueueNotifier(publisher eventPublisher) domain.ContactNotifier {
	return &queueNotifier{publisher: publisher}
}

func (n *queueNotifier) Name() string { return "queue" }

func (n *queueNotifier) NotifyContact(ctx context.Context, submission *domain.ContactSubmission, id *string) error {
	return n.publisher.Publish(ctx, ContactSubmittedEvent{
		ID:          id,
		Name:        submission.Name,
		Email:       submission.Email,
		Company:     submission.Company,
		Budget:      submission.Budget,
		Message:     submission.Message,
		SubmittedAt: submission.CreatedAt,
	})
}
