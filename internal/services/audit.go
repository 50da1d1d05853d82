package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/internal/infrastructure/journal"
	"github.com/taskforge/backend/usecase"
)

// AuditRecorder writes mutation events into the local journal and prunes
// entries past the retention window on a cron schedule.
type AuditRecorder struct {
	store     *journal.Store
	retention time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewAuditRecorder(store *journal.Store, retention time.Duration, logger *zap.Logger) *AuditRecorder {
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditRecorder{
		store:     store,
		retention: retention,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start schedules the hourly retention sweep.
func (r *AuditRecorder) Start() error {
	if _, err := r.cron.AddFunc("@hourly", r.sweep); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the sweep schedule and waits for a running sweep to finish.
func (r *AuditRecorder) Stop(ctx context.Context) {
	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}

func (r *AuditRecorder) RecordProfile(ctx context.Context, operation string, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Append(journal.Event{
		UserID:    user.ID,
		Entity:    journal.EntityProfile,
		Operation: operation,
		Data:      payload,
	})
}

func (r *AuditRecorder) RecordTask(ctx context.Context, operation string, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return r.store.Append(journal.Event{
		UserID:    task.UserID,
		Entity:    journal.EntityTask,
		Operation: operation,
		Data:      payload,
	})
}

func (r *AuditRecorder) sweep() {
	removed, err := r.store.Prune(time.Now().Add(-r.retention))
	if err != nil {
		r.logger.Warn("journal sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		r.logger.Info("journal sweep completed", zap.Int("removed", removed))
	}
}

var _ usecase.AuditTrail = (*AuditRecorder)(nil)
