package request

// RegisterRequest carries the registration payload. Birthday is an optional
// ISO date (YYYY-MM-DD).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateUserRequest mirrors the registration rules; password is optional and
// the stored hash is kept when it is omitted.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
