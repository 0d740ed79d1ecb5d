// Package qrimage renderiza el código escaneable de un material como PNG.
package qrimage

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/materiales-api/internal/application/usecase"
)

// DefaultSize lado en píxeles de la imagen cuando no se pide un tamaño.
const DefaultSize = 256

var _ usecase.QRRenderer = (*Renderer)(nil)

// Renderer genera imágenes QR PNG. Sin estado: función pura envuelta en un
// tipo para satisfacer el puerto.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render codifica el payload como QR (corrección de errores media) y lo
// escala al tamaño pedido.
func (r *Renderer) Render(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qrimage: payload vacío")
	}
	if size <= 0 {
		size = DefaultSize
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrimage: codificar: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qrimage: escalar a %dx%d: %w", size, size, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qrimage: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
