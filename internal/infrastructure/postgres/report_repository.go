package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y las proyecciones
// de ubicación.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountMaterials total de materiales registrados.
func (r *ReportRepo) CountMaterials(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM materials`)
}

// CountConfirmed materiales ya conferidos.
func (r *ReportRepo) CountConfirmed(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM materials WHERE confirmed`)
}

// CountDistinctSectors sectores únicos registrados.
func (r *ReportRepo) CountDistinctSectors(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT sector) FROM materials`)
}

func (r *ReportRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// ListSectors sectores únicos, ordenados alfabéticamente.
func (r *ReportRepo) ListSectors(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, `SELECT DISTINCT sector FROM materials ORDER BY sector`)
}

// ListRooms salas únicas de un sector, ordenadas alfabéticamente.
func (r *ReportRepo) ListRooms(ctx context.Context, sector string) ([]string, error) {
	return r.listStrings(ctx, `SELECT DISTINCT room FROM materials WHERE sector = $1 ORDER BY room`, sector)
}

func (r *ReportRepo) listStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
