package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un grupo.
func (r *GroupRepo) Create(ctx context.Context, g *entity.Group) error {
	query := `
		INSERT INTO groups (id, district_id, name, community, founded_at, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.DistrictID, g.Name, g.Community, g.FoundedAt, g.Active, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert group", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *GroupRepo) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	query := `
		SELECT id, district_id, name, community, founded_at, active, created_at, updated_at
		FROM groups WHERE id = $1`
	var g entity.Group
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.DistrictID, &g.Name, &g.Community, &g.FoundedAt, &g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError("get group", err)
	}
	return &g, nil
}

// Update actualiza un grupo.
func (r *GroupRepo) Update(ctx context.Context, g *entity.Group) error {
	query := `
		UPDATE groups SET name = $2, community = $3, founded_at = $4, active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, g.ID, g.Name, g.Community, g.FoundedAt, g.Active, g.UpdatedAt)
	if err != nil {
		return mapWriteError("update group", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista grupos, filtrando por distrito si districtID no está vacío.
func (r *GroupRepo) List(ctx context.Context, districtID string, limit, offset int) ([]*entity.Group, error) {
	query := `
		SELECT id, district_id, name, community, founded_at, active, created_at, updated_at
		FROM groups WHERE ($1::text = '' OR district_id = $1::text) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, districtID, limit, offset)
	if err != nil {
		return nil, wrapError("list groups", err)
	}
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.DistrictID, &g.Name, &g.Community, &g.FoundedAt, &g.Active, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, wrapError("scan group", err)
		}
		list = append(list, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("list groups", err)
	}
	return list, nil
}

// Delete elimina un grupo; la junta directiva se borra en cascada.
func (r *GroupRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete group", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
