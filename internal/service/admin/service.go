package admin

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
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.AvailabilityPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, pubsub *redisrepo.AvailabilityPubSub) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// ListReservations returns every reservation with its domo name.
func (s *Service) ListReservations(ctx context.Context) ([]domain.ReservationWithDomo, error) {
	const op = "service.admin.ListReservations"

	out, err := s.store.Reservations().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListDomos returns all domos straight from the store, bypassing the
// public cache.
func (s *Service) ListDomos(ctx context.Context) ([]domain.Domo, error) {
	const op = "service.admin.ListDomos"

	out, err := s.store.Domos().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateDomo edits a domo's rates and description.
//
// Returns:
//   - *domain.Domo: the updated domo.
//   - error: admin.ErrDomoNotFound if the domo does not exist.
func (s *Service) UpdateDomo(ctx context.Context, id int64, p postgresrepo.UpdateDomoParams) (*domain.Domo, error) {
	const op = "service.admin.UpdateDomo"

	var updated *domain.Domo
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		d, err := s.store.Domos().With(tx).Update(ctx, id, p)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrDomoNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		updated = d

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateDomo(ctx, id)
		})
		return nil
	})

	return updated, err
}

// CancelReservation flips a reservation to cancelada; its dates become
// bookable again. The transition is one-way.
//
// Returns:
//   - error: admin.ErrReservationNotFound if the reservation does not exist.
func (s *Service) CancelReservation(ctx context.Context, id int64) error {
	const op = "service.admin.CancelReservation"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		domoID, err := s.store.Reservations().With(tx).Cancel(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrReservationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateDomo(ctx, domoID)
			_ = s.pubsub.PublishAvailabilityChanged(ctx, domoID)
		})
		return nil
	})
}

// ListHolidays returns the holiday calendar.
func (s *Service) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	const op = "service.admin.ListHolidays"

	out, err := s.store.Holidays().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// AddHoliday registers a new holiday date.
//
// Returns:
//   - *domain.Holiday: the created holiday.
//   - error: admin.ErrHolidayConflict if the date is already registered.
func (s *Service) AddHoliday(ctx context.Context, date time.Time, name string) (*domain.Holiday, error) {
	const op = "service.admin.AddHoliday"

	h, err := s.store.Holidays().Insert(ctx, date, name)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrHolidayConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return h, nil
}

// DeleteHoliday removes a holiday.
//
// Returns:
//   - error: admin.ErrHolidayNotFound if the holiday does not exist.
func (s *Service) DeleteHoliday(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteHoliday"

	if err := s.store.Holidays().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrHolidayNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetDiscounts returns the stored discount tier table, or the default
// two-tier table when none has been configured.
func (s *Service) GetDiscounts(ctx context.Context) ([]domain.DiscountTier, error) {
	const op = "service.admin.GetDiscounts"

	raw, err := s.store.Settings().Get(ctx, postgresrepo.SettingDiscounts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pricing.DefaultTiers(), nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tiers, err := pricing.ParseTiers(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBadDiscounts)
	}

	return tiers, nil
}

// UpdateDiscounts validates and stores a new discount tier table.
//
// Returns:
//   - error: admin.ErrBadDiscounts when the payload is not a valid
//     nights-to-fraction mapping.
func (s *Service) UpdateDiscounts(ctx context.Context, raw []byte) error {
	const op = "service.admin.UpdateDiscounts"

	tiers, err := pricing.ParseTiers(raw)
	if err != nil || len(tiers) == 0 {
		return fmt.Errorf("%s: %w", op, ErrBadDiscounts)
	}

	normalized, err := pricing.TiersJSON(tiers)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.Settings().Upsert(ctx, postgresrepo.SettingDiscounts, normalized, "json"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
