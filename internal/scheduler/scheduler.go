// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scheduler wires up the cron job that publishes posts whose
// scheduled_publish_at has come due.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"scholargate/internal/models"
	"scholargate/internal/store"
	"scholargate/internal/workflow"
)

// Scheduler wraps robfig/cron and manages the scheduled-publish loop.
// Publishing goes through the workflow service so a due post gets the
// same newsletter fan-out as a manual publish.
type Scheduler struct {
	cron    *cron.Cron
	posts   *store.PostStore
	service *workflow.PostService
	spec    string
}

// New creates a Scheduler that checks for due posts every minute.
func New(posts *store.PostStore, service *workflow.PostService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		posts:   posts,
		service: service,
		spec:    "@every 1m",
	}
}

// Start registers the job and starts the scheduler. Also runs one pass
// immediately so posts due during downtime publish without waiting for
// the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.publishDue(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	slog.Info("scheduler started", "spec", s.spec)

	go s.publishDue(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

// publishDue publishes every draft whose scheduled time has passed. One
// failed post does not block the rest of the batch.
func (s *Scheduler) publishDue(ctx context.Context) {
	due, err := s.posts.ListScheduledDue(time.Now())
	if err != nil {
		slog.Error("scheduled publish: listing due posts failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	slog.Info("scheduled publish: due posts found", "count", len(due))
	for _, post := range due {
		if _, err := s.service.UpdateStatus(ctx, post.ID, models.PostStatusPublished); err != nil {
			slog.Error("scheduled publish failed", "post_id", post.ID, "error", err)
			continue
		}
		slog.Info("scheduled publish done", "post_id", post.ID, "slug", post.Slug)
	}
}
