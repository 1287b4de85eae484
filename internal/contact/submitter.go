package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is how long SimulatedSubmitter pretends the network takes.
const DefaultDelay = 1500 * time.Millisecond

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter delivers a validated form somewhere.
type Submitter interface {
	Submit(ctx context.Context, f Form) (Receipt, error)
}

// SimulatedSubmitter accepts every form after a fixed delay and delivers it
// nowhere.
type SimulatedSubmitter struct {
	Delay time.Duration
	Now   func() time.Time
}

// Submit waits for Delay, or until ctx is done.
func (s SimulatedSubmitter) Submit(ctx context.Context, _ Form) (Receipt, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Receipt{ID: uuid.NewString(), SubmittedAt: now().UTC()}, nil
}

// Service validates forms and passes valid ones to a Submitter.
type Service struct {
	submitter Submitter
	logger    *zap.Logger
}

// NewService returns a Service using submitter.
func NewService(submitter Submitter, logger *zap.Logger) *Service {
	return &Service{submitter: submitter, logger: logger}
}

// Submit validates f and submits the normalized form. An invalid form returns
// a *ValidationError without reaching the submitter.
func (s *Service) Submit(ctx context.Context, f Form) (Receipt, error) {
	f = f.Normalize()
	if fields := Validate(f); fields != nil {
		return Receipt{}, &ValidationError{Fields: fields}
	}

	receipt, err := s.submitter.Submit(ctx, f)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error("Failed to submit contact form", zap.Error(err))
		}
		return Receipt{}, err
	}

	s.logger.Info("Contact form submitted",
		zap.String("receipt_id", receipt.ID),
		zap.String("project_type", f.ProjectType))
	return receipt, nil
}
