package entities

import "time"

// Incident represents an equipment incident report. Equipo and Usuario carry
// display names resolved at read time.
type Incident struct {
	ID            int64      `json:"id"`
	Equipo        string     `json:"equipo"`
	Usuario       string     `json:"usuario"`
	Titulo        string     `json:"titulo"`
	Descripcion   string     `json:"descripcion"`
	Prioridad     string     `json:"prioridad"`
	Estado        string     `json:"estado"`
	FechaCreacion time.Time  `json:"fecha_creacion"`
	FechaCierre   *time.Time `json:"fecha_cierre,omitempty"` // Pointer allows nil (still open)
}
