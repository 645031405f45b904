package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/services"
)

// Scheduler resolves scheduling text for a tenant and checks instants
// against opening hours and item notice requirements.
type Scheduler struct {
	client  *ent.Client
	catalog *services.CatalogService

	// Now is the clock used for past checks and notice windows.
	Now func() time.Time
}

// NewScheduler creates a Scheduler over the operational store.
func NewScheduler(client *ent.Client) *Scheduler {
	return &Scheduler{
		client:  client,
		catalog: services.NewCatalogService(client),
		Now:     time.Now,
	}
}

// ResolveText parses customer text in the business timezone. Date-only input
// resolves to the opening time of that day; a date the business never opens
// is rejected with BUSINESS_CLOSED.
func (s *Scheduler) ResolveText(ctx context.Context, businessID, ownerUserID, text string) (time.Time, error) {
	loc, err := s.location(ctx, businessID)
	if err != nil {
		return time.Time{}, err
	}

	res, err := Parse(text, s.Now(), loc)
	if err != nil {
		return time.Time{}, err
	}
	if !res.DateOnly {
		return res.At, nil
	}
	return s.openingOn(ctx, businessID, ownerUserID, res.At, loc)
}

// openingOn returns the instant the business opens on the given day. When
// that instant already passed but the day is today, now is returned so the
// request is treated as immediate.
func (s *Scheduler) openingOn(ctx context.Context, businessID, ownerUserID string, day time.Time, loc *time.Location) (time.Time, error) {
	oh, err := s.catalog.EffectiveHours(ctx, businessID, ownerUserID, int(day.Weekday()))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return time.Time{}, &Error{Code: CodeBusinessClosed, Message: fmt.Sprintf("closed on %s", day.Format("Monday"))}
		}
		return time.Time{}, err
	}
	if oh.IsClosed || oh.OpenTime == nil {
		return time.Time{}, &Error{Code: CodeBusinessClosed, Message: fmt.Sprintf("closed on %s", day.Format("Monday"))}
	}

	clock, err := time.Parse("15:04", *oh.OpenTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed open time %q: %w", *oh.OpenTime, err)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)

	if now := s.Now().In(loc); at.Before(now) {
		if startOfDay(now).Equal(startOfDay(day)) {
			return now, nil
		}
		return time.Time{}, past("%s is already past", day.Format("Monday"))
	}
	return at, nil
}

// ValidateSchedulable checks that the instant falls inside opening hours and
// honors the widest min-notice window among the given items.
func (s *Scheduler) ValidateSchedulable(ctx context.Context, businessID, ownerUserID string, at time.Time, itemIDs []string) error {
	loc, err := s.location(ctx, businessID)
	if err != nil {
		return err
	}
	at = at.In(loc)
	now := s.Now().In(loc)

	if at.Before(now) {
		return past("%s has already passed", at.Format("Monday 15:04"))
	}

	open, err := s.catalog.IsOpenAt(ctx, businessID, ownerUserID, at)
	if err != nil {
		return err
	}
	if !open {
		return &Error{Code: CodeBusinessClosed, Message: fmt.Sprintf("closed at %s", at.Format("Monday 15:04"))}
	}

	if len(itemIDs) == 0 {
		return nil
	}
	items, err := s.client.Item.Query().
		Where(item.IDIn(itemIDs...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query items: %w", err)
	}

	notice := 0
	for _, it := range items {
		if it.MinScheduleHours > notice {
			notice = it.MinScheduleHours
		}
	}
	if notice > 0 && at.Before(now.Add(time.Duration(notice)*time.Hour)) {
		return past("this order needs at least %d hours notice", notice)
	}
	return nil
}

func (s *Scheduler) location(ctx context.Context, businessID string) (*time.Location, error) {
	business, err := s.client.User.Query().
		Where(user.IDEQ(businessID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query business: %w", err)
	}
	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", business.Timezone, err)
	}
	return loc, nil
}
