package entity

import "time"

// Material representa un bien físico inventariado.
//
// QRHash es el identificador escaneable: 16 caracteres hexadecimales en
// minúscula, único en toda la tabla, asignado una sola vez al crear el
// registro y nunca mutado después. Sector/Room forman la jerarquía de
// ubicación de dos niveles; siempre se sobreescriben completos, nunca
// se mezclan campos de dos escrituras.
type Material struct {
	ID              int64
	Name            string
	InternalCode    string // código BMP interno de la institución
	Sector          string
	Room            string
	Custodian       string // responsable del bien
	Notes           string // opcional
	QRHash          string
	Confirmed       bool
	LastConfirmedAt *time.Time // solo lo escribe una conferencia exitosa
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
