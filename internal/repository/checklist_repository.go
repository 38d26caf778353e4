package repository

import (
	"context"
	"database/sql"
	"fmt"

	"greenlab-checklist-be/internal/database"
	"greenlab-checklist-be/internal/entities"
)

// ChecklistRepository defines the interface for checklist database operations
type ChecklistRepository interface {
	ListTemplates(ctx context.Context) ([]*entities.ChecklistTemplate, error)
	ListEntries(ctx context.Context) ([]*entities.ChecklistEntry, error)
}

type checklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *sql.DB) ChecklistRepository {
	return &checklistRepository{db: db}
}

// ListTemplates returns all checklist templates, newest first, with the
// number of items each template has.
func (r *checklistRepository) ListTemplates(ctx context.Context) ([]*entities.ChecklistTemplate, error) {
	query := `
		SELECT t.id, t.tipo_equipo, t.nombre, COUNT(i.id) AS total_items
		FROM checklist_templates t
		LEFT JOIN checklist_items i ON i.template_id = t.id
		GROUP BY t.id, t.tipo_equipo, t.nombre
		ORDER BY t.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var templates []*entities.ChecklistTemplate
	for rows.Next() {
		var tpl entities.ChecklistTemplate
		if err := rows.Scan(&tpl.ID, &tpl.TipoEquipo, &tpl.Nombre, &tpl.TotalItems); err != nil {
			return nil, fmt.Errorf("failed to scan checklist template: %w", err)
		}
		templates = append(templates, &tpl)
	}

	if err = rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return templates, nil
}

// ListEntries returns all checklist entries, newest first by date then id,
// with equipment and user display names resolved.
func (r *checklistRepository) ListEntries(ctx context.Context) ([]*entities.ChecklistEntry, error) {
	query := `
		SELECT c.id, e.nombre AS equipo, u.nombre AS usuario, c.fecha, c.comentario
		FROM checklist_registros c
		JOIN equipos e ON e.id = c.equipo_id
		JOIN users u ON u.id = c.usuario_id
		ORDER BY c.fecha DESC, c.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var entries []*entities.ChecklistEntry
	for rows.Next() {
		var entry entities.ChecklistEntry
		err := rows.Scan(&entry.ID, &entry.Equipo, &entry.Usuario, &entry.Fecha, &entry.Comentario)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return entries, nil
}
