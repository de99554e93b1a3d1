package liveupdate

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/consumer"
	"github.com/hyumane/hyumane/internal/entities"
)

var log = logrus.WithField("package", "liveupdate")

// Handler is the page-side sink for notifications. The feed controller
// implements it.
type Handler interface {
	HandleNotification(ctx context.Context, n entities.Notification)
}

type liveupdate struct {
	s backend.Stream
	h Handler

	retryInterval time.Duration
}

// New creates new instance of liveupdate consumer.
func New(s backend.Stream, h Handler, retryInterval time.Duration) consumer.Consumer {
	return liveupdate{
		s:             s,
		h:             h,
		retryInterval: retryInterval,
	}
}

// Run subscribes to the notification stream and dispatches refetches until
// ctx is cancelled. A dead stream is resubscribed after the retry interval.
func (l liveupdate) Run(ctx context.Context) error {
	for {
		ch, err := l.s.Subscribe(ctx)
		if err != nil {
			log.WithError(err).Error("failed to subscribe")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(l.retryInterval):
				continue
			}
		}

		log.Info("subscribed to live updates")

		if err := l.consume(ctx, ch); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.retryInterval):
		}
	}
}

func (l liveupdate) consume(ctx context.Context, ch <-chan entities.Notification) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-ch:
			if !ok {
				log.Warn("stream closed, resubscribing")
				return nil
			}

			// delivery is at-least-once: coalesce the burst so one affected
			// aggregate is refetched once per dispatch pass
			for _, n := range coalesce(n, ch) {
				l.h.HandleNotification(ctx, n)
			}
		}
	}
}

func coalesce(first entities.Notification, ch <-chan entities.Notification) []entities.Notification {
	out := []entities.Notification{first}
	seen := map[entities.Notification]struct{}{first: {}}

	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return out
			}

			if _, ok := seen[n]; ok {
				continue
			}

			seen[n] = struct{}{}
			out = append(out, n)
		default:
			return out
		}
	}
}
