package audit

import (
	"context"
	"log/slog"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
)

// AuditSink writes audit entries best effort: a storage failure is
// logged and swallowed so it never fails the operation being audited.
type AuditSink struct {
	repo audit.AuditRepository
	log  *slog.Logger
}

func NewAuditSink(repo audit.AuditRepository, log *slog.Logger) audit.Logger {
	return &AuditSink{repo: repo, log: log}
}

// Log implements audit.Logger.
func (s *AuditSink) Log(ctx context.Context, e audit.Entry) {
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("action", e.Action),
			slog.String("entity_type", e.EntityType),
			slog.String("entity_ref", e.EntityRef),
			slog.Any("error", err),
		)
	}
}
