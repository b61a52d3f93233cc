package domain

type AuthStatus string

const (
	// AuthUnknown is the state before the session has been verified with
	// the server.
	AuthUnknown      AuthStatus = "unknown"
	AuthAuthorized   AuthStatus = "authorized"
	AuthUnauthorized AuthStatus = "unauthorized"
)

type UserInfo struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"`
}
