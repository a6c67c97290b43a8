package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
)

type DomoRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *DomoRepo) With(db DB) *DomoRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *DomoRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns all domos ordered by id.
func (r *DomoRepo) List(ctx context.Context) ([]domain.Domo, error) {
	const op = "postgres.DomoRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, nombre, descripcion, capacidad, precio_semana, precio_fin_semana
		 FROM domos
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Domo
	for rows.Next() {
		var d domain.Domo
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Description,
			&d.Capacity,
			&d.WeekdayRate,
			&d.WeekendRate,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Get retrieves a domo by its ID.
//
// Returns:
//   - *domain.Domo: the domo when found.
//   - error: repository.ErrNotFound if the domo does not exist.
func (r *DomoRepo) Get(ctx context.Context, id int64) (*domain.Domo, error) {
	const op = "postgres.DomoRepo.Get"

	db := r.handle()

	var d domain.Domo
	err := db.QueryRow(ctx,
		`SELECT id, nombre, descripcion, capacidad, precio_semana, precio_fin_semana
		 FROM domos WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Capacity, &d.WeekdayRate, &d.WeekendRate)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &d, nil
}

// UpdateDomoParams carries the admin-editable fields; nil means unchanged.
type UpdateDomoParams struct {
	WeekdayRate *int64
	WeekendRate *int64
	Description *string
}

// Update applies the given price/description edits and returns the
// updated row.
//
// Returns:
//   - *domain.Domo: the updated domo.
//   - error: repository.ErrNotFound if the domo does not exist.
func (r *DomoRepo) Update(ctx context.Context, id int64, p UpdateDomoParams) (*domain.Domo, error) {
	const op = "postgres.DomoRepo.Update"

	db := r.handle()

	var d domain.Domo
	err := db.QueryRow(ctx,
		`UPDATE domos
		 SET precio_semana     = COALESCE($2, precio_semana),
		     precio_fin_semana = COALESCE($3, precio_fin_semana),
		     descripcion       = COALESCE($4, descripcion)
		 WHERE id = $1
		 RETURNING id, nombre, descripcion, capacidad, precio_semana, precio_fin_semana`,
		id, p.WeekdayRate, p.WeekendRate, p.Description,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Capacity, &d.WeekdayRate, &d.WeekendRate)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &d, nil
}
