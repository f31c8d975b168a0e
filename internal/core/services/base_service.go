package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current instant. Nil means time.Now.
	Clock func() time.Time
	// Location is the business timezone used to decide today's date. Nil means UTC.
	Location *time.Location
	// MaxRangeDays bounds explicit report windows. Zero means config.DefaultMaxRangeDays.
	MaxRangeDays int
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current instant from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Today returns the current calendar date in the business timezone.
func (s *BaseService) Today() string {
	return dates.Today(s.Now(), s.Location)
}
