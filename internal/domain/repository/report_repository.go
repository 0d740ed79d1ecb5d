package repository

import "context"

// ReportRepository consultas de solo lectura sobre el estado actual de los
// materiales: conteos para el dashboard y proyecciones de ubicación.
// Sin efectos secundarios.
type ReportRepository interface {
	CountMaterials(ctx context.Context) (int, error)
	CountConfirmed(ctx context.Context) (int, error)
	CountDistinctSectors(ctx context.Context) (int, error)
	ListSectors(ctx context.Context) ([]string, error)
	ListRooms(ctx context.Context, sector string) ([]string, error)
}
