package dto

// LoginRequest carries the caller's PLM credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// User is the authenticated user as reported by the remote system.
type User struct {
	Username string `json:"username" example:"jdoe"`
	UserID   string `json:"userId,omitempty" example:"jdoe01"`
	GroupID  string `json:"groupId,omitempty" example:"Engineering"`
	Role     string `json:"role,omitempty" example:"Designer"`
}

// AuthToken is the locally minted credential returned to callers. The token
// embeds the remote session id, so no server-side session state exists.
type AuthToken struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"3600"` // seconds
	TokenType string `json:"tokenType" example:"Bearer"`
}

// LoginResponse -.
type LoginResponse struct {
	User User      `json:"user"`
	Auth AuthToken `json:"auth"`
}

// RefreshResponse -.
type RefreshResponse struct {
	Auth AuthToken `json:"auth"`
}
