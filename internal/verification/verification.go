// Package verification consumes the outcome of the third-party identity
// widget. The widget's internal protocol stays opaque: only its success token
// and error details cross this boundary. This is the single writer of the
// persisted session record.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/session"
)

var log = logrus.WithField("package", "verification")

// ErrInvalidToken is returned when the widget's success token does not prove
// a verified identity.
var ErrInvalidToken = errors.New("invalid verification token")

type claims struct {
	jwt.RegisteredClaims

	Verified bool `json:"verified"`
}

// Handler receives the widget callbacks.
type Handler struct {
	store  session.Store
	secret []byte

	now func() time.Time
}

// New creates new instance of Handler.
func New(store session.Store, secret []byte) *Handler {
	return &Handler{
		store:  store,
		secret: secret,
		now:    time.Now,
	}
}

// OnSuccess validates the widget's token and persists the verification
// record. Nothing is persisted for a token that fails validation.
func (h *Handler) OnSuccess(ctx context.Context, token string) error {
	var c claims

	if _, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if c.Subject == "" || !c.Verified {
		return ErrInvalidToken
	}

	if err := h.store.Set(ctx, &session.Record{
		ActorID:    c.Subject,
		Verified:   true,
		VerifiedAt: h.now(),
	}); err != nil {
		return fmt.Errorf("failed to persist session record: %w", err)
	}

	log.WithField("actor", c.Subject).Info("identity verified")

	return nil
}

// OnError logs the widget failure. The user stays unauthenticated and the
// page re-offers the verification flow.
func (h *Handler) OnError(details string) {
	log.WithField("details", details).Error("identity verification failed")
}
