package services

import "time"

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithClock overrides the source of the current time.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithLocation sets the business timezone.
func WithLocation(loc *time.Location) Option {
	return func(s *BaseService) {
		s.Location = loc
	}
}

// WithMaxRangeDays caps explicit report windows. Zero or less keeps the default.
func WithMaxRangeDays(days int) Option {
	return func(s *BaseService) {
		s.MaxRangeDays = days
	}
}

func newBase(opts []Option) BaseService {
	var b BaseService
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
