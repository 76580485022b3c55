package models

type AuthProvider string

const (
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
	ProviderEmail    AuthProvider = "email"
)

// AuthUser is the signed-in shopper profile. Sign-in is mocked: each
// provider synthesizes a deterministic profile, only the id and CreatedAt
// vary with the sign-in time.
type AuthUser struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Provider  AuthProvider `json:"provider"`
	CreatedAt int64        `json:"createdAt"`
}
