package internal

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Username    string         `json:"username" validate:"required,max=128"`
	Password    string         `json:"password" validate:"required"`
	Permissions map[string]any `json:"permissions"`
}

// UserResponse carries the content service user id as a string since it does
// not fit in a JSON number.
type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
