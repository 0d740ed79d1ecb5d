package dto

// StatsResponse estadísticas generales de conferencia.
// ConfirmationRate es porcentaje redondeado a 2 decimales; 0 sin materiales.
type StatsResponse struct {
	TotalMaterials       int     `json:"total_materials"`
	ConfirmedMaterials   int     `json:"confirmed_materials"`
	UnconfirmedMaterials int     `json:"unconfirmed_materials"`
	TotalSectors         int     `json:"total_sectors"`
	ConfirmationRate     float64 `json:"confirmation_rate"`
}
