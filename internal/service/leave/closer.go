package leave

import (
	"context"
	"log/slog"
	"time"
)

// CloseElapsedLeaves moves approved leaves whose end date has passed to
// CLOSED. Run periodically by the scheduler.
func (s *LeaveServiceImpl) CloseElapsedLeaves(ctx context.Context) error {
	closed, err := s.LeaveRepository.CloseElapsed(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.InfoContext(ctx, "closed elapsed leaves", slog.Int64("count", closed))
	}

	return nil
}
