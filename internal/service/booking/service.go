package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/pricing"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/repository"
	postgresrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
	redisrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/redis"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/uow"
)

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.AvailabilityPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.AvailabilityPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
	}
}

type CreateReservationInput struct {
	DomoID       int64
	CustomerName string
	Email        string
	Phone        string
	StartDate    time.Time
	EndDate      time.Time
}

// CreateReservation books a stay. Validation happens up front; the
// availability re-check, pricing and insert then run inside one
// transaction holding an advisory lock on the domo, so two concurrent
// requests for overlapping dates cannot both succeed.
//
// Parameters:
//   - ctx: request-scoped context.
//   - in: the candidate reservation.
//   - rlKey: rate-limit bucket for the caller, empty to skip limiting.
//
// Returns:
//   - *domain.Reservation: the persisted reservation with id, price and
//     creation timestamp filled in.
//   - error: booking.ErrInvalidRange, booking.ErrMissingContact,
//     booking.ErrSlotTaken or booking.ErrDomoNotFound.
func (s *Service) CreateReservation(
	ctx context.Context,
	in CreateReservationInput,
	rlKey string,
) (*domain.Reservation, error) {
	const op = "service.booking.CreateReservation"

	if pricing.Nights(in.StartDate, in.EndDate) <= 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidRange)
	}

	if strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrMissingContact)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	res := &domain.Reservation{
		DomoID:       in.DomoID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		reservations := s.store.Reservations().With(tx)

		if err := reservations.LockDomo(ctx, in.DomoID); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		// The stored fecha_fin is the checkout date; the inclusive
		// comparison blocks back-to-back bookings on purpose.
		overlapping, err := reservations.CountOverlapping(ctx, in.DomoID, in.StartDate, in.EndDate)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		if overlapping > 0 {
			return fmt.Errorf("%s:%w", op, ErrSlotTaken)
		}

		d, err := s.store.Domos().With(tx).Get(ctx, in.DomoID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrDomoNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		holidayDates, err := s.store.Holidays().With(tx).Dates(ctx)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		tiers := loadTiers(ctx, s.store.Settings().With(tx))

		q, err := pricing.Quote(d, in.StartDate, in.EndDate, pricing.NewHolidaySet(holidayDates), tiers)
		if err != nil {
			return fmt.Errorf("%s:%w", op, ErrInvalidRange)
		}

		res.Nights = q.Nights
		res.TotalPrice = q.Total
		res.Discount = q.Discount

		if err := reservations.Insert(ctx, res); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateDomo(ctx, in.DomoID)
			_ = s.pubsub.PublishAvailabilityChanged(ctx, in.DomoID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
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
