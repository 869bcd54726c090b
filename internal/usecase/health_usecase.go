package usecase

import (
	"context"
	"fmt"
	"time"

	"neurodek-backend/config"
	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"

	"go.uber.org/zap"
)

type diagnosticsUsecase struct {
	urlSet    bool
	nameSet   bool
	inspector domain.DatabaseInspector
	timeout   time.Duration
}

// NewDiagnosticsUsecase reports on cfg's database settings and, when
// inspector is non-nil, on the live store.
func NewDiagnosticsUsecase(cfg *config.Config, inspector domain.DatabaseInspector) domain.DiagnosticsUsecase {
	return &diagnosticsUsecase{
		urlSet:    cfg.DatabaseURLSet(),
		nameSet:   cfg.DatabaseNameSet(),
		inspector: inspector,
		timeout:   cfg.DBTimeout,
	}
}

// Report never fails; store errors are folded into the Database field.
func (u *diagnosticsUsecase) Report(ctx context.Context) *domain.DiagnosticsReport {
	report := &domain.DiagnosticsReport{
		Backend:          domain.BackendRunning,
		Database:         domain.DatabaseUnavailable,
		DatabaseURL:      setStatus(u.urlSet),
		DatabaseName:     setStatus(u.nameSet),
		ConnectionStatus: domain.ConnectionNotConfigured,
		Driver:           domain.DriverNone,
		Collections:      []string{},
	}

	if u.inspector == nil {
		return report
	}
	report.Driver = u.inspector.Driver()

	names, err := u.collectionNames(ctx)
	if err != nil {
		logger.Warn(ctx, "Diagnostics: listing collections failed", zap.Error(err))
		report.Database = "error: " + apperror.Truncate(err.Error(), domain.DiagnosticErrorMaxLength)
		report.ConnectionStatus = domain.ConnectionError
		return report
	}

	if len(names) > domain.MaxReportedCollections {
		names = names[:domain.MaxReportedCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = domain.DatabaseAvailable
	report.ConnectionStatus = domain.ConnectionConnected
	return report
}

func (u *diagnosticsUsecase) collectionNames(ctx context.Context) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			names, err = nil, fmt.Errorf("%v", r)
		}
	}()

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	return u.inspector.CollectionNames(ctx)
}

func setStatus(set bool) string {
	if set {
		return domain.ConfigSet
	}
	return domain.ConfigNotSet
}
