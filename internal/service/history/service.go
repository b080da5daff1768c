package history

import (
	"context"
	"log/slog"

	"github.com/workforcehq/workforce-backend-go/internal/domain/history"
)

// HistorySink records change history best effort, same contract as the
// audit sink: failures are logged, never propagated.
type HistorySink struct {
	repo history.HistoryRepository
	log  *slog.Logger
}

func NewHistorySink(repo history.HistoryRepository, log *slog.Logger) history.Recorder {
	return &HistorySink{repo: repo, log: log}
}

// Record implements history.Recorder.
func (s *HistorySink) Record(ctx context.Context, e history.Entry) {
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.WarnContext(ctx, "history write failed",
			slog.String("entity_type", e.EntityType),
			slog.String("entity_ref", e.EntityRef),
			slog.Any("error", err),
		)
	}
}
