package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/devicefinder/core/classifier"
	"github.com/dmitrymomot/devicefinder/core/device"
)

// ErrSummarizeFailed wraps provider failures during description generation.
var ErrSummarizeFailed = errors.New("summarization failed")

// Summarizer compresses a composed payload into a short description.
// Implementations call an external text-AI provider; see pkg/summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Throttle is the cool-down policy applied between summarization calls:
// after Every calls, pause for Cooldown. It exists because provider rate
// limits are enforced per minute, not per call.
type Throttle struct {
	Every    int
	Cooldown time.Duration
}

// DefaultThrottle matches the provider's free-tier rate limit.
var DefaultThrottle = Throttle{Every: 5, Cooldown: time.Minute}

// Describer generates and persists descriptions for records that lack one.
type Describer struct {
	registry   *classifier.Registry
	summarizer Summarizer
	store      device.Store
	throttle   Throttle
	log        *slog.Logger
}

// DescriberOption configures a Describer.
type DescriberOption func(*Describer)

// WithThrottle overrides the default cool-down policy.
func WithThrottle(t Throttle) DescriberOption {
	return func(d *Describer) {
		if t.Every > 0 {
			d.throttle = t
		}
	}
}

// WithLogger sets the logger used for progress reporting.
func WithLogger(log *slog.Logger) DescriberOption {
	return func(d *Describer) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDescriber wires a describer over a classifier registry, a summarizer
// and the primary store.
func NewDescriber(registry *classifier.Registry, summarizer Summarizer, store device.Store, opts ...DescriberOption) *Describer {
	d := &Describer{
		registry:   registry,
		summarizer: summarizer,
		store:      store,
		throttle:   DefaultThrottle,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DescribeAll walks the records, composes a payload for each one that has
// no description yet, summarizes it and persists the result. Records that
// already carry a description are skipped, which makes the pass safe to
// re-run after a partial failure. Returns the number of descriptions
// written.
func (d *Describer) DescribeAll(ctx context.Context, records []device.Record) (int, error) {
	written := 0
	sinceCooldown := 0

	for _, rec := range records {
		if rec.Description != "" {
			continue
		}
		if sinceCooldown >= d.throttle.Every {
			d.log.InfoContext(ctx, "summarization cool-down",
				slog.Duration("pause", d.throttle.Cooldown))
			select {
			case <-time.After(d.throttle.Cooldown):
			case <-ctx.Done():
				return written, ctx.Err()
			}
			sinceCooldown = 0
		}

		payload := Compose(rec, d.registry.Classify(rec))
		summary, err := d.summarizer.Summarize(ctx, payload)
		if err != nil {
			return written, fmt.Errorf("%w: record %d: %v", ErrSummarizeFailed, rec.ID, err)
		}
		if err := d.store.SaveDescription(ctx, rec.ID, summary); err != nil {
			return written, fmt.Errorf("save description for record %d: %w", rec.ID, err)
		}

		d.log.DebugContext(ctx, "description generated", slog.Int("record_id", rec.ID))
		written++
		sinceCooldown++
	}

	return written, nil
}
