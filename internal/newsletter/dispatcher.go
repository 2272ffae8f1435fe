// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package newsletter

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"scholargate/internal/models"
)

// Sender delivers a single email. Implemented by mailer.SMTP in
// production and by fakes in tests.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const (
	// defaultBatchSize bounds concurrent connections to the mail transport.
	defaultBatchSize = 10
	// defaultBatchDelay is the pause between batches, respecting SMTP
	// provider rate limits. No delay follows the final batch.
	defaultBatchDelay = 1 * time.Second
)

// Result tallies a fan-out. Total is always Sent + Failed.
type Result struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// Dispatcher fans a post announcement out to subscriber emails. Sends run
// concurrently within a fixed-size batch; the dispatcher waits for every
// send in a batch to settle before starting the next one. A failed send
// is counted and logged, never propagated — one bad address must not
// starve the rest of the list.
type Dispatcher struct {
	sender     Sender
	baseURL    string
	batchSize  int
	batchDelay time.Duration
}

// NewDispatcher creates a Dispatcher delivering through the given sender.
// baseURL is the public site root used for post and unsubscribe links.
func NewDispatcher(sender Sender, baseURL string) *Dispatcher {
	return &Dispatcher{
		sender:     sender,
		baseURL:    baseURL,
		batchSize:  defaultBatchSize,
		batchDelay: defaultBatchDelay,
	}
}

// Dispatch renders the announcement once and delivers it to every email
// in recipients. An empty recipient list is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, post *models.Post, recipients []string) (Result, error) {
	if len(recipients) == 0 {
		slog.Info("newsletter dispatch skipped, no subscribers", "post_id", post.ID)
		return Result{}, nil
	}

	body, err := RenderAnnouncement(post, d.baseURL)
	if err != nil {
		return Result{}, err
	}
	subject := Subject(post)

	var sent, failed atomic.Int64

	for start := 0; start < len(recipients); start += d.batchSize {
		end := start + d.batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		var wg sync.WaitGroup
		for _, email := range batch {
			wg.Add(1)
			go func(email string) {
				defer wg.Done()
				if err := d.sender.Send(ctx, email, subject, personalize(body, email)); err != nil {
					failed.Add(1)
					slog.Error("newsletter send failed",
						"post_id", post.ID,
						"recipient", email,
						"error", err,
					)
					return
				}
				sent.Add(1)
			}(email)
		}
		wg.Wait()

		if end < len(recipients) {
			time.Sleep(d.batchDelay)
		}
	}

	result := Result{
		Sent:   int(sent.Load()),
		Failed: int(failed.Load()),
		Total:  len(recipients),
	}
	slog.Info("newsletter dispatch complete",
		"post_id", post.ID,
		"sent", result.Sent,
		"failed", result.Failed,
		"total", result.Total,
	)
	return result, nil
}
