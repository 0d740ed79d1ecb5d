// Package analytics contiene los casos de uso de solo lectura: estadísticas
// de conferencia y proyecciones de ubicación (sectores, salas, materiales
// por ubicación).
package analytics

import (
	"context"
	"math"
	"strings"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas generales del sistema.
//
// Fuente de datos: ReportRepository (consultas read-only) más el listado por
// ubicación del MaterialRepository. No tiene efectos secundarios.
type DashboardUseCase struct {
	reportRepo   repository.ReportRepository
	materialRepo repository.MaterialRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, materialRepo repository.MaterialRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, materialRepo: materialRepo}
}

// GetStats construye el StatsResponse.
//
// Tres consultas en paralelo:
//  1. CountMaterials        → total
//  2. CountConfirmed        → conferidos
//  3. CountDistinctSectors  → sectores únicos
//
// La tasa de conferencia se redondea a 2 decimales; con cero materiales es
// 0 explícito, nunca una división por cero propagada.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	type countResult struct {
		n   int
		err error
	}

	totalCh := make(chan countResult, 1)
	confirmedCh := make(chan countResult, 1)
	sectorsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.reportRepo.CountMaterials(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountConfirmed(ctx)
		confirmedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountDistinctSectors(ctx)
		sectorsCh <- countResult{n, err}
	}()

	total := <-totalCh
	confirmed := <-confirmedCh
	sectors := <-sectorsCh

	for _, r := range []countResult{total, confirmed, sectors} {
		if r.err != nil {
			return nil, r.err
		}
	}

	var rate float64
	if total.n > 0 {
		rate = math.Round(float64(confirmed.n)/float64(total.n)*100*100) / 100
	}

	return &dto.StatsResponse{
		TotalMaterials:       total.n,
		ConfirmedMaterials:   confirmed.n,
		UnconfirmedMaterials: total.n - confirmed.n,
		TotalSectors:         sectors.n,
		ConfirmationRate:     rate,
	}, nil
}

// ListSectors devuelve los sectores únicos registrados.
func (uc *DashboardUseCase) ListSectors(ctx context.Context) ([]string, error) {
	return uc.reportRepo.ListSectors(ctx)
}

// ListRooms devuelve las salas únicas de un sector.
func (uc *DashboardUseCase) ListRooms(ctx context.Context, sector string) ([]string, error) {
	return uc.reportRepo.ListRooms(ctx, strings.TrimSpace(sector))
}

// ListMaterialsAt lista los materiales de un sector y sala concretos.
func (uc *DashboardUseCase) ListMaterialsAt(ctx context.Context, sector, room string) ([]dto.MaterialResponse, error) {
	items, err := uc.materialRepo.ListByLocation(ctx, strings.TrimSpace(sector), strings.TrimSpace(room))
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.MaterialResponse{
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
		})
	}
	return out, nil
}
