package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepo reads and writes the configuracion key-value table. The
// discount tier table lives here as JSON under the "descuentos" key.
type SettingsRepo struct {
	pool *pgxpool.Pool
	db   DB
}

const SettingDiscounts = "descuentos"

func (r *SettingsRepo) With(db DB) *SettingsRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SettingsRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Get returns the raw value stored under clave.
//
// Returns:
//   - []byte: the stored value.
//   - error: repository.ErrNotFound if the key does not exist.
func (r *SettingsRepo) Get(ctx context.Context, clave string) ([]byte, error) {
	const op = "postgres.SettingsRepo.Get"

	db := r.handle()

	var valor []byte
	err := db.QueryRow(ctx,
		`SELECT valor FROM configuracion WHERE clave = $1`,
		clave,
	).Scan(&valor)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return valor, nil
}

// Upsert stores valor under clave, replacing any previous value.
func (r *SettingsRepo) Upsert(ctx context.Context, clave string, valor []byte, tipo string) error {
	const op = "postgres.SettingsRepo.Upsert"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO configuracion (clave, valor, tipo)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor, tipo = EXCLUDED.tipo`,
		clave, valor, tipo,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}
