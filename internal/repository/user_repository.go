package repository

import (
	"context"
	"database/sql"
	"fmt"

	"greenlab-checklist-be/internal/database"
	"greenlab-checklist-be/internal/entities"
)

// userColumns must match the Scan order in scanUser. The password hash is
// deliberately not part of it; only FindByIDWithHash reads it.
const userColumns = `id, nombre, email, rol`

// UserRepository defines the interface for user database operations
type UserRepository interface {
	List(ctx context.Context) ([]*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByIDWithHash(ctx context.Context, id int64) (*entities.User, error)
	Create(ctx context.Context, nombre, email, passwordHash, rol string) (*entities.User, error)
	Update(ctx context.Context, id int64, nombre, email, passwordHash, rol string) (*entities.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(&user.ID, &user.Nombre, &user.Email, &user.Rol)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first. The password hash is never selected.
func (r *userRepository) List(ctx context.Context) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Nombre, &user.Email, &user.Rol); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return users, nil
}

// FindByID finds a user by id without the password hash.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return user, nil
}

// FindByIDWithHash finds a user by id including the stored password hash.
// Used only to merge partial updates; the hash stays inside the backend.
func (r *userRepository) FindByIDWithHash(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, nombre, email, password_hash, rol FROM users WHERE id = $1`

	var user entities.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.PasswordHash,
		&user.Rol,
	)
	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return &user, nil
}

// Create inserts a new user. A duplicate email surfaces as
// apperrors.ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, nombre, email, passwordHash, rol string) (*entities.User, error) {
	query := `
		INSERT INTO users (nombre, email, password_hash, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, nombre, email, passwordHash, rol))
	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return user, nil
}

// Update overwrites every column of the user row. Partial-update merging
// happens in the service before this is called.
func (r *userRepository) Update(ctx context.Context, id int64, nombre, email, passwordHash, rol string) (*entities.User, error) {
	query := `
		UPDATE users
		SET nombre = $1, email = $2, password_hash = $3, rol = $4
		WHERE id = $5
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, nombre, email, passwordHash, rol, id))
	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return user, nil
}

// Delete removes a user. A user still referenced by equipment, checklist
// entries or incidents surfaces as apperrors.ErrReferenced.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return database.ClassifyError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return database.ClassifyError(sql.ErrNoRows)
	}

	return nil
}
