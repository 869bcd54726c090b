package usecase

import (
	"context"
	"net/http"
	"sync"
	"time"

	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	ContactStatusOK = "ok"

	persistErrorMaxLength = 200
)

// ContactTimeouts bounds the work done for one submission. Zero disables the bound.
type ContactTimeouts struct {
	Store  time.Duration
	Notify time.Duration
}

type ContactUsecase struct {
	repo      domain.ContactRepository
	notifiers []domain.ContactNotifier
	timeouts  ContactTimeouts

	pending sync.WaitGroup
}

// NewContactUsecase creates a new contact usecase. repo may be nil, in which
// case submissions are accepted without being stored.
func NewContactUsecase(repo domain.ContactRepository, timeouts ContactTimeouts, notifiers ...domain.ContactNotifier) *ContactUsecase {
	return &ContactUsecase{
		repo:      repo,
		notifiers: notifiers,
		timeouts:  timeouts,
	}
}

// Submit stores the submission when a repository is configured. Notifiers
// run in the background and never delay the result.
func (uc *ContactUsecase) Submit(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactResult, error) {
	if submission == nil {
		return nil, apperror.BadRequest("Missing contact submission")
	}

	var id *string
	if uc.repo != nil {
		docID, err := uc.persist(ctx, submission)
		if err != nil {
			logger.Error(ctx, "Failed to persist contact submission", zap.Error(err))
			msg := apperror.Truncate("Failed to submit: "+err.Error(), persistErrorMaxLength)
			return nil, apperror.New(http.StatusInternalServerError, msg, err)
		}
		id = &docID
	} else {
		logger.Info(ctx, "No document store configured, contact submission not stored")
	}

	uc.dispatch(ctx, submission, id)

	return &domain.ContactResult{
		Status: ContactStatusOK,
		Name:   submission.Name,
		ID:     id,
	}, nil
}

// Wait blocks until background notifications finish or ctx is done
func (uc *ContactUsecase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *ContactUsecase) persist(ctx context.Context, submission *domain.ContactSubmission) (string, error) {
	if uc.timeouts.Store > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeouts.Store)
		defer cancel()
	}
	return uc.repo.Create(ctx, submission)
}

// dispatch runs the notifiers detached from the request, keeping its values (logger, request id)
func (uc *ContactUsecase) dispatch(ctx context.Context, submission *domain.ContactSubmission, id *string) {
	if len(uc.notifiers) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	cancel := context.CancelFunc(func() {})
	if uc.timeouts.Notify > 0 {
		ctx, cancel = context.WithTimeout(ctx, uc.timeouts.Notify)
	}

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		defer cancel()
		uc.notify(ctx, submission, id)
	}()
}

func (uc *ContactUsecase) notify(ctx context.Context, submission *domain.ContactSubmission, id *string) {
	for _, n := range uc.notifiers {
		if err := n.NotifyContact(ctx, submission, id); err != nil {
			logger.Warn(ctx, "Contact notifier failed",
				zap.String("notifier", n.Name()),
				zap.Error(err),
			)
		}
	}
}
