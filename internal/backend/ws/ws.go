// Package ws is implementation of backend stream interface over a websocket.
package ws

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/entities"
)

var log = logrus.WithField("layer", "backend").WithField("package", "ws")

type stream struct {
	url    string
	dialer *websocket.Dialer
}

// New creates new instance of stream.
func New(url string) backend.Stream {
	return &stream{
		url:    url,
		dialer: websocket.DefaultDialer,
	}
}

// Subscribe dials the notification endpoint and pumps decoded events into the
// returned channel. The channel is closed when the connection dies or ctx is
// cancelled; resubscribing is the caller's job.
func (s *stream) Subscribe(ctx context.Context) (<-chan entities.Notification, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", s.url, err)
	}

	ch := make(chan entities.Notification)

	// connCtx scopes the watcher to this connection: a dead stream releases it
	// instead of parking it on the caller's lifetime
	connCtx, connCancel := context.WithCancel(ctx)

	go func() {
		<-connCtx.Done()
		conn.Close() // nolint
	}()

	go func() {
		defer close(ch)
		defer connCancel()

		for {
			var n entities.Notification
			if err := conn.ReadJSON(&n); err != nil {
				if ctx.Err() == nil {
					log.WithError(err).Error("failed to read notification")
				}
				return
			}

			select {
			case <-ctx.Done():
				return
			case ch <- n:
			}
		}
	}()

	return ch, nil
}
