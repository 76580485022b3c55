package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueSessionToken signs a 24h session JWT for the given user id.
func IssueSessionToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    "user",
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// IssueGuestToken signs a session JWT for a shopper browsing without an
// account.
func IssueGuestToken() (string, string, error) {
	guestID := "guest_" + uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": guestID,
		"role":    "guest",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return guestID, signed, err
}
