package repository

import (
	"context"
	"database/sql"
	"fmt"

	"greenlab-checklist-be/internal/database"
	"greenlab-checklist-be/internal/entities"
)

// IncidentRepository defines the interface for incident database operations
type IncidentRepository interface {
	List(ctx context.Context) ([]*entities.Incident, error)
}

type incidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *sql.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// List returns all incidents, newest first by creation time then id, with
// equipment and user display names resolved.
func (r *incidentRepository) List(ctx context.Context) ([]*entities.Incident, error) {
	query := `
		SELECT i.id, e.nombre AS equipo, u.nombre AS usuario, i.titulo,
		       i.descripcion, i.prioridad, i.estado, i.fecha_creacion, i.fecha_cierre
		FROM incidencias i
		JOIN equipos e ON e.id = i.equipo_id
		JOIN users u ON u.id = i.usuario_id
		ORDER BY i.fecha_creacion DESC, i.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var incidents []*entities.Incident
	for rows.Next() {
		var inc entities.Incident
		err := rows.Scan(
			&inc.ID,
			&inc.Equipo,
			&inc.Usuario,
			&inc.Titulo,
			&inc.Descripcion,
			&inc.Prioridad,
			&inc.Estado,
			&inc.FechaCreacion,
			&inc.FechaCierre,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, &inc)
	}

	if err = rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return incidents, nil
}
