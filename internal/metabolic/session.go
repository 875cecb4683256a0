package metabolic

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bmr-calculator/internal/model"
)

// Reporter receives the outcome of each Session.Calculate call.
type Reporter interface {
	ReportFailure(err error)
	ReportResult(c *model.Calculation)
}

// Session holds the form state of one calculator window and the latest
// successful calculation. It is not safe for concurrent use.
type Session struct {
	Fields model.InputFields

	latest   *model.Calculation
	reporter Reporter
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator overrides the calculation ID source.
func WithIDGenerator(newID func() string) SessionOption {
	return func(s *Session) { s.newID = newID }
}

// NewSession returns a session with default fields. reporter may be nil.
func NewSession(reporter Reporter, opts ...SessionOption) *Session {
	s := &Session{
		Fields:   model.DefaultInputFields(),
		reporter: reporter,
		logger:   slog.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate validates the current fields and, on success, replaces the
// latest calculation. A failure leaves the previous calculation in place.
func (s *Session) Calculate() (*model.Calculation, error) {
	m, err := Validate(s.Fields)
	if err != nil {
		s.logger.Debug("validation failed", "error", err)
		if s.reporter != nil {
			s.reporter.ReportFailure(err)
		}
		return nil, err
	}

	c := &model.Calculation{
		ID:        s.newID(),
		Timestamp: s.now(),
		Input:     m,
		Result:    ComputeMeasurements(m),
	}
	s.latest = c

	s.logger.Debug("calculation completed",
		"id", c.ID,
		"bmr", c.Result.BMR,
		"tdee", c.Result.TDEE,
		"activity", m.ActivityLevel,
	)
	if s.reporter != nil {
		s.reporter.ReportResult(c)
	}
	return c, nil
}

// Latest returns the most recent successful calculation, or nil.
func (s *Session) Latest() *model.Calculation {
	return s.latest
}
