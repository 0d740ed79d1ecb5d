// Package pdf genera la hoja de etiquetas imprimibles de materiales.
//
// Layout de la página A4: una grilla de 3 etiquetas por fila, cada una con
// el código QR del material, su nombre, el código BMP interno y la
// ubicación actual (sector / sala). Pensada para imprimir, recortar y
// pegar sobre el bien físico.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/materiales-api/internal/application/usecase"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

const labelsPerRow = 3

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.LabelPDFGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa usecase.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelsPDF genera la hoja de etiquetas y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabelsPDF(_ context.Context, materials []*entity.Material) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas de materiales", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(materials)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for start := 0; start < len(materials); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(materials) {
			end = len(materials)
		}
		m.AddRows(labelRow(materials[start:end]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow título de la hoja con el total de etiquetas.
func headerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Etiquetas de materiales", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d etiquetas", total), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// labelRow una fila de hasta 3 etiquetas: QR + nombre + BMP + ubicación.
func labelRow(materials []*entity.Material) core.Row {
	r := row.New(48)
	for _, mat := range materials {
		r.Add(labelCol(mat))
	}
	return r
}

func labelCol(m *entity.Material) core.Col {
	return col.New(4).Add(
		code.NewQr(m.QRHash, props.Rect{
			Center:  true,
			Percent: 65,
		}),
		text.New(m.Name, props.Text{
			Top: 33, Size: 8, Style: fontstyle.Bold, Align: align.Center,
		}),
		text.New("BMP "+m.InternalCode, props.Text{
			Top: 38, Size: 7, Align: align.Center, Color: colorGray,
		}),
		text.New(m.Sector+" / "+m.Room, props.Text{
			Top: 42, Size: 7, Align: align.Center, Color: colorGray,
		}),
	)
}
