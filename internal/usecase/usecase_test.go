package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"neurodek-backend/config"
	"neurodek-backend/internal/domain"
	"neurodek-backend/internal/usecase"
	"neurodek-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, submission *domain.ContactSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

type MockInspector struct {
	mock.Mock
}

func (m *MockInspector) Driver() string {
	return m.Called().String(0)
}

func (m *MockInspector) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Name() string { return "mock" }

func (m *MockNotifier) NotifyContact(ctx context.Context, submission *domain.ContactSubmission, id *string) error {
	return m.Called(ctx, submission, id).Error(0)
}

type panickingInspector struct{}

func (panickingInspector) Driver() string { return domain.DriverMongo }
func (panickingInspector) CollectionNames(context.Context) ([]string, error) {
	panic("driver exploded")
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:      "Ana",
		Email:     "ana@x.com",
		Message:   "Hello there",
		CreatedAt: time.Now().UTC(),
	}
}

// slowNotifier blocks until release is closed or its context ends
type slowNotifier struct {
	release  chan struct{}
	finished chan error
}

func (n *slowNotifier) Name() string { return "slow" }

func (n *slowNotifier) NotifyContact(ctx context.Context, _ *domain.ContactSubmission, _ *string) error {
	var err error
	select {
	case <-n.release:
	case <-ctx.Done():
		err = ctx.Err()
	}
	n.finished <- err
	return err
}

func TestContactSubmit(t *testing.T) {
	timeouts := usecase.ContactTimeouts{Store: time.Second, Notify: time.Second}

	t.Run("Should accept without storing when no repository is configured", func(t *testing.T) {
		uc := usecase.NewContactUsecase(nil, timeouts)

		res, err := uc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Status)
		assert.Equal(t, "Ana", res.Name)
		assert.Nil(t, res.ID)
	})

	t.Run("Should return the generated document id", func(t *testing.T) {
		repo := new(MockContactRepo)
		sub := validSubmission()
		repo.On("Create", mock.Anything, sub).Return("65f1a2b3c4d5e6f708192a3b", nil)

		uc := usecase.NewContactUsecase(repo, timeouts)
		res, err := uc.Submit(context.Background(), sub)
		require.NoError(t, err)
		require.NotNil(t, res.ID)
		assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", *res.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail with a truncated server error when the store raises", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return("", errors.New(strings.Repeat("x", 1000)))

		uc := usecase.NewContactUsecase(repo, timeouts)
		res, err := uc.Submit(context.Background(), validSubmission())
		assert.Nil(t, res)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.True(t, strings.HasPrefix(appErr.Message, "Failed to submit: "))
		assert.LessOrEqual(t, utf8.RuneCountInString(appErr.Message), 200)
	})

	t.Run("Should bound the store call with the configured timeout", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return("id-1", nil).Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		})

		_, err := usecase.NewContactUsecase(repo, usecase.ContactTimeouts{Store: 50 * time.Millisecond}).Submit(context.Background(), validSubmission())
		require.NoError(t, err)
	})

	t.Run("Should ignore notifier failures", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return("id-2", nil)
		notifier := new(MockNotifier)
		notifier.On("NotifyContact", mock.Anything, mock.Anything, mock.MatchedBy(func(id *string) bool {
			return id != nil && *id == "id-2"
		})).Return(errors.New("smtp down"))

		uc := usecase.NewContactUsecase(repo, timeouts, notifier)
		res, err := uc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.Equal(t, "id-2", *res.ID)

		require.NoError(t, uc.Wait(context.Background()))
		notifier.AssertExpectations(t)
	})

	t.Run("Should return before a slow notifier finishes", func(t *testing.T) {
		notifier := &slowNotifier{release: make(chan struct{}), finished: make(chan error, 1)}
		uc := usecase.NewContactUsecase(nil, timeouts, notifier)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		res, err := uc.Submit(ctx, validSubmission())
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Status)
		assert.Less(t, time.Since(start), 100*time.Millisecond)

		// the request context ending must not cancel the notification
		<-ctx.Done()
		select {
		case err := <-notifier.finished:
			t.Fatalf("notifier ended with the request: %v", err)
		default:
		}

		close(notifier.release)
		require.NoError(t, uc.Wait(context.Background()))
		assert.NoError(t, <-notifier.finished)
	})

	t.Run("Should bound notifications with the notify timeout", func(t *testing.T) {
		notifier := &slowNotifier{release: make(chan struct{}), finished: make(chan error, 1)}
		uc := usecase.NewContactUsecase(nil, usecase.ContactTimeouts{Notify: 50 * time.Millisecond}, notifier)

		_, err := uc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)

		require.NoError(t, uc.Wait(context.Background()))
		assert.ErrorIs(t, <-notifier.finished, context.DeadlineExceeded)
	})

	t.Run("Should stop waiting for notifications when the context ends", func(t *testing.T) {
		notifier := &slowNotifier{release: make(chan struct{}), finished: make(chan error, 1)}
		uc := usecase.NewContactUsecase(nil, usecase.ContactTimeouts{}, notifier)

		_, err := uc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, uc.Wait(ctx), context.DeadlineExceeded)

		close(notifier.release)
		require.NoError(t, uc.Wait(context.Background()))
	})

	t.Run("Should not notify when persistence fails", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return("", errors.New("boom"))
		notifier := new(MockNotifier)

		uc := usecase.NewContactUsecase(repo, timeouts, notifier)
		_, err := uc.Submit(context.Background(), validSubmission())
		require.Error(t, err)
		require.NoError(t, uc.Wait(context.Background()))
		notifier.AssertNotCalled(t, "NotifyContact", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject a nil submission", func(t *testing.T) {
		_, err := usecase.NewContactUsecase(nil, usecase.ContactTimeouts{}).Submit(context.Background(), nil)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}

func TestDiagnosticsReport(t *testing.T) {
	cfg := &config.Config{DBUrl: "mongodb://localhost", DBName: "neurodek", DBTimeout: time.Second}

	t.Run("Should report unconfigured database", func(t *testing.T) {
		uc := usecase.NewDiagnosticsUsecase(&config.Config{}, nil)
		r := uc.Report(context.Background())

		assert.Equal(t, "running", r.Backend)
		assert.Equal(t, domain.DatabaseUnavailable, r.Database)
		assert.Equal(t, "not set", r.DatabaseURL)
		assert.Equal(t, "not set", r.DatabaseName)
		assert.Equal(t, domain.ConnectionNotConfigured, r.ConnectionStatus)
		assert.Equal(t, domain.DriverNone, r.Driver)
		assert.NotNil(t, r.Collections)
		assert.Empty(t, r.Collections)
	})

	t.Run("Should cap the collection list at ten", func(t *testing.T) {
		names := make([]string, 15)
		for i := range names {
			names[i] = fmt.Sprintf("c%02d", i)
		}
		inspector := new(MockInspector)
		inspector.On("Driver").Return(domain.DriverMongo)
		inspector.On("CollectionNames", mock.Anything).Return(names, nil)

		r := usecase.NewDiagnosticsUsecase(cfg, inspector).Report(context.Background())
		assert.Equal(t, domain.DatabaseAvailable, r.Database)
		assert.Equal(t, domain.ConnectionConnected, r.ConnectionStatus)
		assert.Equal(t, "set", r.DatabaseURL)
		assert.Equal(t, "set", r.DatabaseName)
		assert.Equal(t, names[:10], r.Collections)
	})

	t.Run("Should embed a truncated error instead of failing", func(t *testing.T) {
		inspector := new(MockInspector)
		inspector.On("Driver").Return(domain.DriverPostgres)
		inspector.On("CollectionNames", mock.Anything).Return(nil, errors.New(strings.Repeat("e", 500)))

		r := usecase.NewDiagnosticsUsecase(cfg, inspector).Report(context.Background())
		assert.Equal(t, domain.ConnectionError, r.ConnectionStatus)
		assert.True(t, strings.HasPrefix(r.Database, "error: "))
		assert.Equal(t, 120, utf8.RuneCountInString(strings.TrimPrefix(r.Database, "error: ")))
		assert.Empty(t, r.Collections)
	})

	t.Run("Should recover from a panicking driver", func(t *testing.T) {
		r := usecase.NewDiagnosticsUsecase(cfg, panickingInspector{}).Report(context.Background())
		assert.Equal(t, "error: driver exploded", r.Database)
		assert.Equal(t, domain.ConnectionError, r.ConnectionStatus)
	})
}
