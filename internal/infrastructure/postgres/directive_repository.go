package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

var _ repository.DirectiveRepository = (*DirectiveRepo)(nil)

const directiveColumns = `id, group_id, full_name, national_id, position, phone, elected_at, created_at, updated_at`

// DirectiveRepo junta directiva de los grupos sobre PostgreSQL.
type DirectiveRepo struct {
	q Querier
}

// NewDirectiveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDirectiveRepository(q Querier) *DirectiveRepo {
	return &DirectiveRepo{q: q}
}

// Create persiste un integrante. El índice parcial de cargos únicos devuelve domain.ErrDuplicate.
func (r *DirectiveRepo) Create(ctx context.Context, m *entity.DirectiveMember) error {
	query := `
		INSERT INTO directive_members (` + directiveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.GroupID, m.FullName, m.NationalID, string(m.Position), m.Phone, m.ElectedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert directive member", err)
	}
	return nil
}

// GetByID obtiene un integrante por ID.
func (r *DirectiveRepo) GetByID(ctx context.Context, id string) (*entity.DirectiveMember, error) {
	m, err := scanDirectiveMember(r.q.QueryRow(ctx, `SELECT `+directiveColumns+` FROM directive_members WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError("get directive member", err)
	}
	return m, nil
}

// Update actualiza un integrante.
func (r *DirectiveRepo) Update(ctx context.Context, m *entity.DirectiveMember) error {
	query := `
		UPDATE directive_members SET full_name = $2, position = $3, phone = $4, elected_at = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, m.ID, m.FullName, string(m.Position), m.Phone, m.ElectedAt, m.UpdatedAt)
	if err != nil {
		return mapWriteError("update directive member", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByGroup lista la junta de un grupo ordenada por cargo y nombre.
func (r *DirectiveRepo) ListByGroup(ctx context.Context, groupID string) ([]*entity.DirectiveMember, error) {
	query := `SELECT ` + directiveColumns + ` FROM directive_members WHERE group_id = $1
		ORDER BY CASE position WHEN 'PRESIDENTE' THEN 0 WHEN 'SECRETARIO' THEN 1 WHEN 'TESORERO' THEN 2 ELSE 3 END, full_name`
	rows, err := r.q.Query(ctx, query, groupID)
	if err != nil {
		return nil, wrapError("list directive members", err)
	}
	defer rows.Close()
	var list []*entity.DirectiveMember
	for rows.Next() {
		m, err := scanDirectiveMember(rows)
		if err != nil {
			return nil, wrapError("scan directive member", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("list directive members", err)
	}
	return list, nil
}

// Delete elimina un integrante.
func (r *DirectiveRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM directive_members WHERE id = $1`, id)
	if err != nil {
		return wrapError("delete directive member", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDirectiveMember(row pgx.Row) (*entity.DirectiveMember, error) {
	var (
		m   entity.DirectiveMember
		pos string
	)
	if err := row.Scan(&m.ID, &m.GroupID, &m.FullName, &m.NationalID, &pos, &m.Phone, &m.ElectedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Position = entity.Position(pos)
	return &m, nil
}
