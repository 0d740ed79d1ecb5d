package dto

import "time"

// CreateMaterialRequest datos para registrar un material.
// qr_hash no se acepta: lo acuña el backend al crear.
type CreateMaterialRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=255"`
	InternalCode string `json:"internal_code" validate:"required,min=1,max=100"`
	Sector       string `json:"sector" validate:"required,min=2,max=100"`
	Room         string `json:"room" validate:"required,min=1,max=100"`
	Custodian    string `json:"custodian" validate:"required,min=3,max=255"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateMaterialRequest actualización parcial: solo se aplican los campos
// presentes. Un string vacío (o solo espacios) cuenta como ausente, nunca
// como "borrar el campo"; así los campos obligatorios no quedan vacíos.
// qr_hash, confirmed y last_confirmed_at no son alcanzables desde aquí.
type UpdateMaterialRequest struct {
	Name         *string `json:"name,omitempty"`
	InternalCode *string `json:"internal_code,omitempty"`
	Sector       *string `json:"sector,omitempty"`
	Room         *string `json:"room,omitempty"`
	Custodian    *string `json:"custodian,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ScanRequest registro de una lectura de QR durante conferencia.
// El operador ya eligió sector y sala en la app móvil.
type ScanRequest struct {
	QRHash string `json:"qr_hash" validate:"required,len=16"`
	Sector string `json:"sector" validate:"required,min=2,max=100"`
	Room   string `json:"room" validate:"required,min=1,max=100"`
}

// MaterialResponse representación de un material en respuestas de la API.
type MaterialResponse struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	InternalCode    string     `json:"internal_code"`
	Sector          string     `json:"sector"`
	Room            string     `json:"room"`
	Custodian       string     `json:"custodian"`
	Notes           string     `json:"notes,omitempty"`
	QRHash          string     `json:"qr_hash"`
	Confirmed       bool       `json:"confirmed"`
	LastConfirmedAt *time.Time `json:"last_confirmed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// MaterialListResponse listado paginado.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ScanResponse resultado de una conferencia registrada.
type ScanResponse struct {
	Message  string           `json:"message"`
	Material MaterialResponse `json:"material"`
}
