// Package consumer contains interface of live-update notifications consumer.
package consumer

import (
	"context"
)

//go:generate mockgen -destination=./mock/consumer.go -package=consumer -source=consumer.go

// Consumer consumes live-update notifications from the backend.
type Consumer interface {
	Run(ctx context.Context) error
}
