package service

import (
	"context"

	"homegate/pkg/cache"
	"homegate/pkg/client"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/session"

	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	api      *client.API
	bookings *Bookings
	sessions *session.Store
	cache    *cache.Store
	log      *logger.Logger
}

func NewDashboard(api *client.API, bookings *Bookings, sessions *session.Store, cacheStore *cache.Store, log *logger.Logger) *Dashboard {
	return &Dashboard{
		api:      api,
		bookings: bookings,
		sessions: sessions,
		cache:    cacheStore,
		log:      log,
	}
}

type Summary struct {
	User          *model.User           `json:"user"`
	Stats         *model.BookingStats   `json:"stats"`
	Bookings      []BookingView         `json:"bookings"`
	Wishlist      []*model.WishlistItem `json:"wishlist"`
	Notifications []*model.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// Summary assembles the landing dashboard in one fan-out. Notifications are
// always fetched fresh: they are polled on demand, never cached.
func (s *Dashboard) Summary(ctx context.Context) (*Summary, error) {
	viewer := s.sessions.User()
	if viewer == nil {
		return nil, apperrors.Unauthorized("Please log in again.")
	}

	summary := &Summary{User: viewer}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.bookings.Stats(gctx)
		if err != nil {
			return err
		}
		summary.Stats = stats
		return nil
	})

	g.Go(func() error {
		views, err := s.bookings.List(gctx)
		if err != nil {
			return err
		}
		summary.Bookings = views
		return nil
	})

	g.Go(func() error {
		items, err := cache.Load(gctx, s.cache, cache.ResourceWishlist, "all", s.api.Wishlist.List)
		if err != nil {
			return err
		}
		summary.Wishlist = items
		return nil
	})

	g.Go(func() error {
		notifications, err := s.api.Notifications.List(gctx)
		if err != nil {
			return err
		}
		summary.Notifications = notifications
		for _, n := range notifications {
			if !n.Read {
				summary.UnreadCount++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
