package service

import (
	postgres "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
	redis "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/redis"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/admin"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/auth"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/booking"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/query"
)

type Services struct {
	Booking *booking.Service
	Query   *query.Service
	Admin   *admin.Service
	Auth    *auth.Service
}

type Config struct {
	Query query.Config
	Auth  auth.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.AvailabilityPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Booking: booking.New(store, cache, pubsub, limiter),
		Query:   query.New(store, cache, cfg.Query),
		Admin:   admin.New(store, cache, pubsub),
		Auth:    auth.New(cfg.Auth),
	}
}
