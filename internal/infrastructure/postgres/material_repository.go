package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// materialColumns columnas en el orden que espera scanMaterial.
// qr_hash es NULL hasta que la acuñación lo escribe; se lee como ''.
const materialColumns = `
	id, name, internal_code, sector, room, custodian, notes,
	COALESCE(qr_hash, ''), confirmed, last_confirmed_at, created_at, updated_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create inserta el material y asigna el id de la secuencia.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, internal_code, sector, room, custodian, notes, confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Name, m.InternalCode, m.Sector, m.Room, m.Custodian, m.Notes, m.Confirmed, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// SetQRHash escribe el hash acuñado. El índice único materials_qr_hash_key
// convierte una colisión en domain.ErrDuplicate para el bucle de reintento.
func (r *MaterialRepo) SetQRHash(ctx context.Context, id int64, hash string) error {
	_, err := r.q.Exec(ctx, `UPDATE materials SET qr_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set qr_hash: %w", err)
	}
	return nil
}

// GetByID obtiene un material por id. (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	return r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene un material por id bloqueando la fila (FOR UPDATE).
func (r *MaterialRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Material, error) {
	return r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1 FOR UPDATE`, id)
}

// GetByQRHash obtiene un material por su hash escaneable.
func (r *MaterialRepo) GetByQRHash(ctx context.Context, hash string) (*entity.Material, error) {
	return r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE qr_hash = $1`, hash)
}

// GetByQRHashForUpdate igual que GetByQRHash pero bloqueando la fila, para
// que conferencias concurrentes del mismo código serialicen.
func (r *MaterialRepo) GetByQRHashForUpdate(ctx context.Context, hash string) (*entity.Material, error) {
	return r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE qr_hash = $1 FOR UPDATE`, hash)
}

func (r *MaterialRepo) getOne(ctx context.Context, query string, arg any) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Update sobreescribe el registro completo salvo id, qr_hash y created_at.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, internal_code = $3, sector = $4, room = $5, custodian = $6,
		    notes = $7, confirmed = $8, last_confirmed_at = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.InternalCode, m.Sector, m.Room, m.Custodian,
		m.Notes, m.Confirmed, m.LastConfirmedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materiales con filtros exactos opcionales y paginación,
// ordenados por id para que la paginación sea determinista.
func (r *MaterialRepo) List(ctx context.Context, f repository.MaterialFilter) ([]*entity.Material, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + materialColumns + ` FROM materials`)

	var args []any
	var conds []string
	if f.Sector != "" {
		args = append(args, f.Sector)
		conds = append(conds, fmt.Sprintf("sector = $%d", len(args)))
	}
	if f.Room != "" {
		args = append(args, f.Room)
		conds = append(conds, fmt.Sprintf("room = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY id")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
		args = append(args, f.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	return collectMaterials(rows)
}

// ListByLocation lista los materiales de un sector y sala concretos.
func (r *MaterialRepo) ListByLocation(ctx context.Context, sector, room string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE sector = $1 AND room = $2 ORDER BY id`
	rows, err := r.q.Query(ctx, query, sector, room)
	if err != nil {
		return nil, fmt.Errorf("list materials by location: %w", err)
	}
	defer rows.Close()
	return collectMaterials(rows)
}

// Delete elimina el registro (hard delete). ErrNotFound si no existía.
func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.InternalCode, &m.Sector, &m.Room, &m.Custodian, &m.Notes,
		&m.QRHash, &m.Confirmed, &m.LastConfirmedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
