package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/pricing"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/repository"
	postgresrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
	redisrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/redis"
)

type Config struct {
	DomoListTTL     time.Duration
	AvailabilityTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.DomoListTTL <= 0 {
		cfg.DomoListTTL = 60 * time.Second
	}

	if cfg.AvailabilityTTL <= 0 {
		cfg.AvailabilityTTL = 15 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// ListDomos returns all domos, served from the cache when warm.
func (s *Service) ListDomos(ctx context.Context) ([]domain.Domo, error) {
	const op = "service.query.ListDomos"

	domos, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyDomoList(),
		s.cfg.DomoListTTL,
		func(ctx context.Context) ([]domain.Domo, error) {
			return s.store.Domos().List(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return domos, nil
}

// OccupiedDates returns every calendar day blocked by a confirmed
// reservation for the domo, from check-in through checkout inclusive,
// as ISO dates. The conservative inclusive expansion matches the
// overlap rule used when booking.
func (s *Service) OccupiedDates(ctx context.Context, domoID int64) ([]string, error) {
	const op = "service.query.OccupiedDates"

	dates, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyDisponibilidad(domoID),
		s.cfg.AvailabilityTTL,
		func(ctx context.Context) ([]string, error) {
			ranges, err := s.store.Reservations().ConfirmedRanges(ctx, domoID)
			if err != nil {
				return nil, err
			}
			return ExpandRanges(ranges), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dates, nil
}

// ExpandRanges flattens booked ranges into individual ISO dates,
// inclusive of both endpoints.
func ExpandRanges(ranges []domain.DateRange) []string {
	out := []string{}
	for _, dr := range ranges {
		for cur := dr.Start; !cur.After(dr.End); cur = cur.AddDate(0, 0, 1) {
			out = append(out, cur.Format(pricing.DateLayout))
		}
	}
	return out
}

// PriceQuote computes the price of a candidate stay without reserving
// anything.
//
// Returns:
//   - domain.Quote: nights, base, discount and total in whole pesos.
//   - error: query.ErrDomoNotFound or query.ErrInvalidRange.
func (s *Service) PriceQuote(
	ctx context.Context,
	domoID int64,
	start, end time.Time,
) (domain.Quote, error) {
	const op = "service.query.PriceQuote"

	if pricing.Nights(start, end) <= 0 {
		return domain.Quote{}, fmt.Errorf("%s: %w", op, ErrInvalidRange)
	}

	d, err := s.store.Domos().Get(ctx, domoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Quote{}, fmt.Errorf("%s: %w", op, ErrDomoNotFound)
		}
		return domain.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	holidayDates, err := s.store.Holidays().Dates(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	tiers := loadTiers(ctx, s.store.Settings())

	q, err := pricing.Quote(d, start, end, pricing.NewHolidaySet(holidayDates), tiers)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%s: %w", op, ErrInvalidRange)
	}

	return q, nil
}

func loadTiers(ctx context.Context, settings *postgresrepo.SettingsRepo) []domain.DiscountTier {
	raw, err := settings.Get(ctx, postgresrepo.SettingDiscounts)
	if err != nil {
		return pricing.DefaultTiers()
	}

	tiers, err := pricing.ParseTiers(raw)
	if err != nil || len(tiers) == 0 {
		return pricing.DefaultTiers()
	}

	return tiers
}
