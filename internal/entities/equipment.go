package entities

import "time"

// Equipment represents a piece of lab equipment. Responsable carries the
// display name of the responsible user, resolved at read time.
type Equipment struct {
	ID                      int64      `json:"id"`
	Nombre                  string     `json:"nombre"`
	Tipo                    string     `json:"tipo"`
	Ubicacion               string     `json:"ubicacion"`
	TemperaturaObjetivo     *float64   `json:"temperatura_objetivo,omitempty"`
	Responsable             *string    `json:"responsable,omitempty"` // Pointer allows nil (no responsible user)
	FrecuenciaMantenimiento string     `json:"frecuencia_mantenimiento"`
	UltimaRevision          *time.Time `json:"ultima_revision,omitempty"`
}
