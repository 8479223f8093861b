package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the advisory session identity the frontend stores in
// local storage. There is no token: the server keeps no session state and
// performs no per-request validation.
type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
