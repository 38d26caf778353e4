package models

// CreateUserRequest represents the request body for creating a user. Every
// field is a pointer so absent and null values normalize to the empty string.
type CreateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
}

// UpdateUserRequest represents the request body for a partial user update.
// Omitted fields keep their stored values; Password is only re-hashed when
// the key is present.
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
}
