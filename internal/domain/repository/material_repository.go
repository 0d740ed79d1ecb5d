package repository

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// MaterialFilter filtros opcionales y paginación para listados de materiales.
// Sector/Room vacíos no filtran esa dimensión.
type MaterialFilter struct {
	Sector string
	Room   string
	Limit  int
	Offset int
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
//
// Los métodos *ForUpdate solo tienen sentido dentro de una transacción
// (adaptador atado a tx vía TxRunner): bloquean la fila hasta el commit.
type MaterialRepository interface {
	// Create inserta el material y asigna m.ID (secuencia de la DB).
	Create(ctx context.Context, m *entity.Material) error
	// SetQRHash escribe el hash acuñado. Devuelve domain.ErrDuplicate si
	// el hash ya pertenece a otro material (constraint único).
	SetQRHash(ctx context.Context, id int64, hash string) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Material, error)
	GetByQRHash(ctx context.Context, hash string) (*entity.Material, error)
	GetByQRHashForUpdate(ctx context.Context, hash string) (*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	// List devuelve materiales ordenados por id para paginación estable.
	List(ctx context.Context, f MaterialFilter) ([]*entity.Material, error)
	ListByLocation(ctx context.Context, sector, room string) ([]*entity.Material, error)
	// Delete elimina el registro. Devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
