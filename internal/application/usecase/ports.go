package usecase

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza que cada escritura sobre un material
// (crear, actualizar, conferir) sea atómica a nivel de registro: operaciones
// concurrentes sobre materiales distintos no se bloquean entre sí, y sobre el
// mismo material serializan vía lock de fila.
type TxRunner interface {
	Run(ctx context.Context, fn func(materials repository.MaterialRepository) error) error
}

// QRRenderer genera la imagen PNG que codifica un payload corto (el qr_hash).
// Función pura: sin estado.
type QRRenderer interface {
	Render(payload string, size int) ([]byte, error)
}

// LabelPDFGenerator genera la hoja de etiquetas imprimibles (QR + datos)
// para un conjunto de materiales.
type LabelPDFGenerator interface {
	GenerateLabelsPDF(ctx context.Context, materials []*entity.Material) ([]byte, error)
}
