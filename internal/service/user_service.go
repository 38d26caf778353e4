package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"greenlab-checklist-be/internal/apperrors"
	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/models"
	"greenlab-checklist-be/internal/repository"
)

// Client-facing validation messages.
const (
	msgMissingFields = "Faltan campos obligatorios: nombre, email, password"
	msgInvalidRole   = "Rol inválido"
)

// UserService defines the interface for user business logic
type UserService interface {
	List(ctx context.Context) ([]*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*entities.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns all users, newest first.
func (s *userService) List(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// GetByID returns one user by id.
func (s *userService) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Create validates the request, hashes the password and inserts the user.
// The role defaults to lab_staff when absent.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error) {
	nombre := textValue(req.Nombre)
	email := textValue(req.Email)
	password := textValue(req.Password)

	rol := textValue(req.Rol)
	if rol == "" {
		rol = entities.RoleLabStaff
	}

	if nombre == "" || email == "" || password == "" {
		return nil, apperrors.NewValidation(msgMissingFields)
	}
	if !entities.ValidRole(rol) {
		return nil, apperrors.NewValidation(msgInvalidRole)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(ctx, nombre, email, hash, rol)
}

// Update applies a partial update: the patch is merged over the stored row,
// omitted fields keep their current values and the password is only
// re-hashed when supplied. Validation failures leave the row untouched.
func (s *userService) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*entities.User, error) {
	current, err := s.userRepo.FindByIDWithHash(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate, newPassword, err := mergeUser(*current, req)
	if err != nil {
		return nil, err
	}

	if newPassword != nil {
		hash, err := hashPassword(*newPassword)
		if err != nil {
			return nil, err
		}
		candidate.PasswordHash = hash
	}

	return s.userRepo.Update(ctx, id, candidate.Nombre, candidate.Email, candidate.PasswordHash, candidate.Rol)
}

// Delete removes a user. Referenced users surface apperrors.ErrReferenced.
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// mergeUser merges a patch over the current row and validates the result.
// It is pure: the candidate carries the current password hash and the second
// return value is the new plaintext password when one was supplied. Either
// every field of the candidate is valid or an error is returned and nothing
// is applied.
func mergeUser(current entities.User, patch *models.UpdateUserRequest) (entities.User, *string, error) {
	candidate := current

	if nombre := textValue(patch.Nombre); nombre != "" {
		candidate.Nombre = nombre
	}
	if email := textValue(patch.Email); email != "" {
		candidate.Email = email
	}
	if rol := textValue(patch.Rol); rol != "" {
		candidate.Rol = rol
	}

	if candidate.Nombre == "" || candidate.Email == "" {
		return entities.User{}, nil, apperrors.NewValidation(msgMissingFields)
	}
	if !entities.ValidRole(candidate.Rol) {
		return entities.User{}, nil, apperrors.NewValidation(msgInvalidRole)
	}

	var newPassword *string
	if patch.Password != nil {
		password := textValue(patch.Password)
		if password == "" {
			return entities.User{}, nil, apperrors.NewValidation(msgMissingFields)
		}
		newPassword = &password
	}

	return candidate, newPassword, nil
}

// hashPassword produces the one-way bcrypt hash stored for a user. There is
// no verification counterpart; no login endpoint exists.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
