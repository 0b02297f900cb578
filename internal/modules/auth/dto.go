package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@donorblog.org"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role" example:"staff"`
}
