package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
)

type failingRepo struct{ calls int }

func (r *failingRepo) Create(context.Context, audit.Entry) error {
	r.calls++
	return errors.New("storage down")
}

func (r *failingRepo) List(context.Context, string, string, int) ([]audit.Entry, error) {
	return nil, nil
}

func TestAuditSink_SwallowsStorageFailure(t *testing.T) {
	repo := &failingRepo{}
	sink := NewAuditSink(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() {
		sink.Log(context.Background(), audit.Entry{Action: audit.ActionAttendanceEntry})
	})
	assert.Equal(t, 1, repo.calls)
}
