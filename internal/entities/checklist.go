package entities

import "time"

// ChecklistTemplate represents a maintenance checklist template. TotalItems
// is an aggregate computed at read time from the template's items.
type ChecklistTemplate struct {
	ID         int64  `json:"id"`
	TipoEquipo string `json:"tipo_equipo"`
	Nombre     string `json:"nombre"`
	TotalItems int    `json:"total_items"`
}

// ChecklistEntry represents a filled-in checklist. Equipo and Usuario carry
// display names resolved at read time.
type ChecklistEntry struct {
	ID         int64     `json:"id"`
	Equipo     string    `json:"equipo"`
	Usuario    string    `json:"usuario"`
	Fecha      time.Time `json:"fecha"`
	Comentario string    `json:"comentario"`
}
