package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
)

type ReservationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReservationRepo) With(db DB) *ReservationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReservationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// LockDomo takes a transaction-scoped advisory lock keyed by the domo id.
// It serializes concurrent booking attempts for the same domo so the
// overlap re-check and the insert behave as one atomic step. Must run
// inside a transaction; the lock is released on commit or rollback.
func (r *ReservationRepo) LockDomo(ctx context.Context, domoID int64) error {
	const op = "postgres.ReservationRepo.LockDomo"

	db := r.handle()

	if _, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, domoID); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// CountOverlapping counts confirmed reservations for the domo whose stored
// range touches [start, end]. The comparison is inclusive on both ends,
// treating the checkout date as occupied; back-to-back bookings where one
// checkout equals another check-in are deliberately blocked.
func (r *ReservationRepo) CountOverlapping(
	ctx context.Context,
	domoID int64,
	start, end time.Time,
) (int64, error) {
	const op = "postgres.ReservationRepo.CountOverlapping"

	db := r.handle()

	var count int64
	err := db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM reservas
		 WHERE domo_id = $1
		   AND estado = 'confirmada'
		   AND fecha_inicio <= $3
		   AND fecha_fin >= $2`,
		domoID, start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return count, nil
}

// Insert persists a confirmed reservation and fills in the generated id
// and creation timestamp.
func (r *ReservationRepo) Insert(ctx context.Context, res *domain.Reservation) error {
	const op = "postgres.ReservationRepo.Insert"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO reservas (
		     domo_id, nombre_cliente, email_cliente, telefono_cliente,
		     fecha_inicio, fecha_fin, cantidad_noches,
		     precio_total, descuento_aplicado, estado
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'confirmada')
		 RETURNING id, fecha_creacion`,
		res.DomoID,
		res.CustomerName,
		res.Email,
		res.Phone,
		res.StartDate,
		res.EndDate,
		res.Nights,
		res.TotalPrice,
		res.Discount,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	res.Status = domain.ReservationConfirmed

	return nil
}

// ConfirmedRanges returns the booked [start, end] pairs of all confirmed
// reservations for the domo, ordered by start date.
func (r *ReservationRepo) ConfirmedRanges(ctx context.Context, domoID int64) ([]domain.DateRange, error) {
	const op = "postgres.ReservationRepo.ConfirmedRanges"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT fecha_inicio, fecha_fin
		 FROM reservas
		 WHERE domo_id = $1 AND estado = 'confirmada'
		 ORDER BY fecha_inicio`,
		domoID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.DateRange
	for rows.Next() {
		var dr domain.DateRange
		if err := rows.Scan(&dr.Start, &dr.End); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListAll returns every reservation joined with its domo name, newest first.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]domain.ReservationWithDomo, error) {
	const op = "postgres.ReservationRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT r.id, r.domo_id, r.nombre_cliente, r.email_cliente, r.telefono_cliente,
		        r.fecha_inicio, r.fecha_fin, r.cantidad_noches,
		        r.precio_total, r.descuento_aplicado, r.estado, r.fecha_creacion,
		        d.nombre
		 FROM reservas r
		 JOIN domos d ON d.id = r.domo_id
		 ORDER BY r.fecha_creacion DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.ReservationWithDomo
	for rows.Next() {
		var rw domain.ReservationWithDomo
		var status string

		if err := rows.Scan(
			&rw.ID,
			&rw.DomoID,
			&rw.CustomerName,
			&rw.Email,
			&rw.Phone,
			&rw.StartDate,
			&rw.EndDate,
			&rw.Nights,
			&rw.TotalPrice,
			&rw.Discount,
			&status,
			&rw.CreatedAt,
			&rw.DomoName,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		rw.Status = domain.ReservationStatus(status)
		out = append(out, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Cancel flips a reservation to cancelada. The transition is one-way;
// cancelling an already cancelled reservation is a no-op.
//
// Returns:
//   - int64: the domo the reservation belonged to, for cache invalidation.
//   - error: repository.ErrNotFound if the reservation does not exist.
func (r *ReservationRepo) Cancel(ctx context.Context, id int64) (int64, error) {
	const op = "postgres.ReservationRepo.Cancel"

	db := r.handle()

	var domoID int64
	err := db.QueryRow(ctx,
		`UPDATE reservas
		 SET estado = 'cancelada'
		 WHERE id = $1
		 RETURNING domo_id`,
		id,
	).Scan(&domoID)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return domoID, nil
}
