package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

var _ repository.DistrictRepository = (*DistrictRepo)(nil)

// DistrictRepo implementación del puerto DistrictRepository sobre PostgreSQL.
type DistrictRepo struct {
	q Querier
}

// NewDistrictRepository construye el adaptador de persistencia para distritos.
func NewDistrictRepository(q Querier) *DistrictRepo {
	return &DistrictRepo{q: q}
}

// Create persiste un distrito. name_key es único: un choque devuelve domain.ErrDuplicate.
func (r *DistrictRepo) Create(ctx context.Context, d *entity.District) error {
	query := `
		INSERT INTO districts (id, name, name_key, municipality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, d.ID, d.Name, d.NameKey, d.Municipality, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return mapWriteError("insert district", err)
	}
	return nil
}

// GetByID obtiene un distrito por ID.
func (r *DistrictRepo) GetByID(ctx context.Context, id string) (*entity.District, error) {
	return r.findOne(ctx, "get district", `WHERE id = $1`, id)
}

// GetByNameKey obtiene un distrito por su nombre normalizado.
func (r *DistrictRepo) GetByNameKey(ctx context.Context, nameKey string) (*entity.District, error) {
	return r.findOne(ctx, "get district by name", `WHERE name_key = $1`, nameKey)
}

func (r *DistrictRepo) findOne(ctx context.Context, op, where string, arg any) (*entity.District, error) {
	query := `SELECT id, name, name_key, municipality, created_at, updated_at FROM districts ` + where
	var d entity.District
	err := r.q.QueryRow(ctx, query, arg).Scan(&d.ID, &d.Name, &d.NameKey, &d.Municipality, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError(op, err)
	}
	return &d, nil
}

// Update actualiza un distrito existente.
func (r *DistrictRepo) Update(ctx context.Context, d *entity.District) error {
	query := `
		UPDATE districts SET name = $2, name_key = $3, municipality = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, d.ID, d.Name, d.NameKey, d.Municipality, d.UpdatedAt)
	if err != nil {
		return mapWriteError("update district", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista distritos por nombre con paginación.
func (r *DistrictRepo) List(ctx context.Context, limit, offset int) ([]*entity.District, error) {
	query := `
		SELECT id, name, name_key, municipality, created_at, updated_at
		FROM districts ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapError("list districts", err)
	}
	defer rows.Close()
	var list []*entity.District
	for rows.Next() {
		var d entity.District
		if err := rows.Scan(&d.ID, &d.Name, &d.NameKey, &d.Municipality, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, wrapError("scan district", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("list districts", err)
	}
	return list, nil
}

// Delete elimina un distrito. Si aún tiene grupos o promotores devuelve domain.ErrConflict.
func (r *DistrictRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete district", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
