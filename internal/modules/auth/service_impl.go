package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/user"
)

// Claims carries the profile identity and role in the login token.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type service struct {
	userRepo user.Repository
	jwtKey   []byte
}

// NewService creates a new auth service. The signing key comes from
// JWT_SECRET.
func NewService(userRepo user.Repository) Service {
	return &service{
		userRepo: userRepo,
		jwtKey:   []byte(os.Getenv("JWT_SECRET")),
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	profile, err := s.userRepo.GetProfileByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := &Claims{
		Role: string(profile.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   profile.ID.String(),
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
