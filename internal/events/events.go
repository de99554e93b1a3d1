// Package events contains the events page controller.
package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/entities"
)

var log = logrus.WithField("package", "events")

// Schedule is the event list bucketed the way the page renders it.
type Schedule struct {
	Upcoming []*entities.Event
	Ongoing  []*entities.Event
	Past     []*entities.Event
}

// Controller ...
type Controller struct {
	b   backend.Backend
	now func() time.Time
}

// New creates new instance of Controller.
func New(b backend.Backend) *Controller {
	return &Controller{
		b:   b,
		now: time.Now,
	}
}

// Load fetches the event list and buckets it relative to now. A failed fetch
// yields an empty schedule.
func (c *Controller) Load(ctx context.Context) Schedule {
	events, err := c.b.GetEvents(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load events")
		return Schedule{}
	}

	return categorize(c.now(), events)
}

func categorize(now time.Time, events []*entities.Event) Schedule {
	var out Schedule

	for _, e := range events {
		switch {
		case e.StartDate.After(now):
			out.Upcoming = append(out.Upcoming, e)
		case e.EndDate.Before(now):
			out.Past = append(out.Past, e)
		default:
			out.Ongoing = append(out.Ongoing, e)
		}
	}

	return out
}
