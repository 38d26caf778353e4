package repository

import (
	"context"
	"database/sql"
	"fmt"

	"greenlab-checklist-be/internal/database"
	"greenlab-checklist-be/internal/entities"
)

// EquipmentRepository defines the interface for equipment database operations
type EquipmentRepository interface {
	List(ctx context.Context) ([]*entities.Equipment, error)
}

type equipmentRepository struct {
	db *sql.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *sql.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

// List returns all equipment, newest first, with the responsible user's
// display name resolved via a left join.
func (r *equipmentRepository) List(ctx context.Context) ([]*entities.Equipment, error) {
	query := `
		SELECT e.id, e.nombre, e.tipo, e.ubicacion, e.temperatura_objetivo,
		       u.nombre AS responsable, e.frecuencia_mantenimiento, e.ultima_revision
		FROM equipos e
		LEFT JOIN users u ON u.id = e.responsable_id
		ORDER BY e.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var equipos []*entities.Equipment
	for rows.Next() {
		var eq entities.Equipment
		err := rows.Scan(
			&eq.ID,
			&eq.Nombre,
			&eq.Tipo,
			&eq.Ubicacion,
			&eq.TemperaturaObjetivo,
			&eq.Responsable,
			&eq.FrecuenciaMantenimiento,
			&eq.UltimaRevision,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipos = append(equipos, &eq)
	}

	if err = rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return equipos, nil
}
