package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/repository"
)

type HolidayRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *HolidayRepo) With(db DB) *HolidayRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *HolidayRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns all holidays ordered by date.
func (r *HolidayRepo) List(ctx context.Context) ([]domain.Holiday, error) {
	const op = "postgres.HolidayRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, fecha, nombre FROM feriados ORDER BY fecha`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Dates returns only the holiday dates, for the pricing holiday set.
func (r *HolidayRepo) Dates(ctx context.Context) ([]time.Time, error) {
	const op = "postgres.HolidayRepo.Dates"

	db := r.handle()

	rows, err := db.Query(ctx, `SELECT fecha FROM feriados`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Insert adds a holiday.
//
// Returns:
//   - *domain.Holiday: the created row.
//   - error: repository.ErrConflict if the date is already a holiday.
func (r *HolidayRepo) Insert(ctx context.Context, date time.Time, name string) (*domain.Holiday, error) {
	const op = "postgres.HolidayRepo.Insert"

	db := r.handle()

	var h domain.Holiday
	err := db.QueryRow(ctx,
		`INSERT INTO feriados (fecha, nombre)
		 VALUES ($1, $2)
		 RETURNING id, fecha, nombre`,
		date, name,
	).Scan(&h.ID, &h.Date, &h.Name)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &h, nil
}

// Delete removes a holiday by id.
//
// Returns:
//   - error: repository.ErrNotFound if the holiday does not exist.
func (r *HolidayRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.HolidayRepo.Delete"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM feriados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
