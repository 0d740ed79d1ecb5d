package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/location"
	"github.com/jhoicas/materiales-api/internal/domain/qrhash"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// qrMintMaxAttempts reintentos de acuñación ante colisión del hash.
// Con 16 hex (64 bits) una colisión es rarísima pero no imposible; agotar
// los reintentos indica un problema de capacidad/configuración, no un caso
// de negocio, y se reporta como ErrConflict envuelto.
const qrMintMaxAttempts = 5

// MaterialUseCase aplica las reglas de negocio del registro de materiales:
// validación, normalización de ubicación, acuñación del qr_hash y el flujo
// de conferencia por escaneo.
type MaterialUseCase struct {
	repo     repository.MaterialRepository
	tx       TxRunner
	renderer QRRenderer
	labels   LabelPDFGenerator
}

// NewMaterialUseCase construye el caso de uso con sus puertos.
func NewMaterialUseCase(repo repository.MaterialRepository, tx TxRunner, renderer QRRenderer, labels LabelPDFGenerator) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, tx: tx, renderer: renderer, labels: labels}
}

// Create registra un material nuevo y acuña su qr_hash.
//
// Flujo: validar → normalizar sector/sala → insertar (obtiene id) → acuñar
// hash sha256(id-nombre-instante)[:16] → escribirlo. Cada intento corre en
// su PROPIA transacción: en PostgreSQL una violación de constraint único
// aborta la tx (toda sentencia posterior falla con 25P02), así que ante una
// colisión se hace rollback completo y se reintenta insert + acuñación con
// un instante re-muestreado, hasta qrMintMaxAttempts.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name, err := requiredField("name", in.Name, 3)
	if err != nil {
		return nil, err
	}
	code, err := requiredField("internal_code", in.InternalCode, 1)
	if err != nil {
		return nil, err
	}
	custodian, err := requiredField("custodian", in.Custodian, 3)
	if err != nil {
		return nil, err
	}
	sector, err := normalizedLocation("sector", in.Sector, 2)
	if err != nil {
		return nil, err
	}
	room, err := normalizedLocation("room", in.Room, 1)
	if err != nil {
		return nil, err
	}

	m := &entity.Material{
		Name:         name,
		InternalCode: code,
		Sector:       sector,
		Room:         room,
		Custodian:    custodian,
		Notes:        strings.TrimSpace(in.Notes),
		Confirmed:    false,
		CreatedAt:    time.Now(),
	}

	for attempt := 1; attempt <= qrMintMaxAttempts; attempt++ {
		err = uc.tx.Run(ctx, func(materials repository.MaterialRepository) error {
			if err := materials.Create(ctx, m); err != nil {
				return err
			}
			hash := qrhash.New(m.ID, m.Name, time.Now())
			if err := materials.SetQRHash(ctx, m.ID, hash); err != nil {
				return err
			}
			m.QRHash = hash
			return nil
		})
		if err == nil {
			return toMaterialResponse(m), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Colisión: la tx quedó abortada e hizo rollback (insert incluido);
		// la siguiente vuelta re-muestrea el instante en una tx nueva.
	}
	return nil, fmt.Errorf("acuñar qr_hash: %d intentos agotados: %w", qrMintMaxAttempts, domain.ErrConflict)
}

// GetByID obtiene un material por id. ErrNotFound si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id int64) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// List lista materiales con filtros exactos opcionales por sector/sala y
// paginación. El orden por id es estable entre llamadas.
func (uc *MaterialUseCase) List(ctx context.Context, sector, room string, page dto.PageRequest) (*dto.MaterialListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(ctx, repository.MaterialFilter{
		Sector: strings.TrimSpace(sector),
		Room:   strings.TrimSpace(room),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.MaterialListResponse{
		Items: make([]dto.MaterialResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range items {
		out.Items = append(out.Items, *toMaterialResponse(m))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes y no
// vacíos tras recortar espacios. qr_hash, confirmed y last_confirmed_at no
// son alcanzables desde esta operación.
func (uc *MaterialUseCase) Update(ctx context.Context, id int64, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	var out *entity.Material
	err := uc.tx.Run(ctx, func(materials repository.MaterialRepository) error {
		m, err := materials.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if v, ok := supplied(in.Name); ok {
			if err := minLength("name", v, 3); err != nil {
				return err
			}
			m.Name = v
		}
		if v, ok := supplied(in.InternalCode); ok {
			m.InternalCode = v
		}
		if v, ok := supplied(in.Custodian); ok {
			if err := minLength("custodian", v, 3); err != nil {
				return err
			}
			m.Custodian = v
		}
		if v, ok := supplied(in.Sector); ok {
			sector, err := normalizedLocation("sector", v, 2)
			if err != nil {
				return err
			}
			m.Sector = sector
		}
		if v, ok := supplied(in.Room); ok {
			room, err := normalizedLocation("room", v, 1)
			if err != nil {
				return err
			}
			m.Room = room
		}
		if v, ok := supplied(in.Notes); ok {
			m.Notes = v
		}
		now := time.Now()
		m.UpdatedAt = &now
		if err := materials.Update(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(out), nil
}

// Delete elimina un material. Solo admin; el middleware HTTP ya lo exige,
// pero la regla se repite aquí para que el caso de uso sea seguro por sí solo.
func (uc *MaterialUseCase) Delete(ctx context.Context, id int64, callerRole string) error {
	if callerRole != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

// ConfirmScan registra una conferencia: busca el material por qr_hash y lo
// reubica al sector/sala donde ocurrió el escaneo. La conferencia siempre
// reubica, no verifica la ubicación anterior.
//
// El formato del hash se valida antes de tocar la persistencia. La lectura
// FOR UPDATE dentro de la tx serializa conferencias concurrentes del mismo
// código: el estado final siempre es una de las triplas completas, nunca
// una mezcla de campos.
func (uc *MaterialUseCase) ConfirmScan(ctx context.Context, in dto.ScanRequest) (*dto.MaterialResponse, error) {
	hash, ok := qrhash.Normalize(in.QRHash)
	if !ok {
		return nil, domain.NewValidationError("qr_hash", "debe tener exactamente 16 caracteres hexadecimales")
	}
	sector, err := normalizedLocation("sector", in.Sector, 2)
	if err != nil {
		return nil, err
	}
	room, err := normalizedLocation("room", in.Room, 1)
	if err != nil {
		return nil, err
	}

	var out *entity.Material
	err = uc.tx.Run(ctx, func(materials repository.MaterialRepository) error {
		m, err := materials.GetByQRHashForUpdate(ctx, hash)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		m.Sector = sector
		m.Room = room
		m.Confirmed = true
		m.LastConfirmedAt = &now
		m.UpdatedAt = &now
		if err := materials.Update(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(out), nil
}

// QRCodePNG genera la imagen PNG del código escaneable de un material.
func (uc *MaterialUseCase) QRCodePNG(ctx context.Context, id int64, size int) ([]byte, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return uc.renderer.Render(m.QRHash, size)
}

// LabelsPDF genera la hoja de etiquetas imprimibles para los materiales de
// una ubicación (o de todo el inventario si sector y sala van vacíos).
func (uc *MaterialUseCase) LabelsPDF(ctx context.Context, sector, room string) ([]byte, error) {
	items, err := uc.repo.List(ctx, repository.MaterialFilter{
		Sector: strings.TrimSpace(sector),
		Room:   strings.TrimSpace(room),
	})
	if err != nil {
		return nil, err
	}
	return uc.labels.GenerateLabelsPDF(ctx, items)
}

// ── Validación ────────────────────────────────────────────────────────────────

// requiredField recorta espacios y exige no-vacío y longitud mínima.
func requiredField(field, value string, min int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", domain.NewValidationError(field, "es requerido")
	}
	if err := minLength(field, v, min); err != nil {
		return "", err
	}
	return v, nil
}

// normalizedLocation normaliza sector/sala (trim + title-case) y valida que
// no quede vacío ni por debajo del mínimo.
func normalizedLocation(field, value string, min int) (string, error) {
	v := location.Normalize(value)
	if v == "" {
		return "", domain.NewValidationError(field, "es requerido")
	}
	if err := minLength(field, v, min); err != nil {
		return "", err
	}
	return v, nil
}

func minLength(field, value string, min int) error {
	if utf8.RuneCountInString(value) < min {
		return domain.NewValidationError(field, fmt.Sprintf("debe tener al menos %d caracteres", min))
	}
	return nil
}

// supplied interpreta un campo opcional del update parcial: nil o vacío
// tras recortar espacios cuentan como "no enviado".
func supplied(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return "", false
	}
	return v, true
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:              m.ID,
		Name:            m.Name,
		InternalCode:    m.InternalCode,
		Sector:          m.Sector,
		Room:            m.Room,
		Custodian:       m.Custodian,
		Notes:           m.Notes,
		QRHash:          m.QRHash,
		Confirmed:       m.Confirmed,
		LastConfirmedAt: m.LastConfirmedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
