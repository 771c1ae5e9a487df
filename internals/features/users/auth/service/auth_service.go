// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	Now       func() time.Time
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret, Now: time.Now}
}

// Login checks credentials and issues a signed access token. Failures are
// deliberately indistinguishable: unknown email and wrong password return
// the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.UserModel, error) {
	var user model.UserModel
	err := s.DB.WithContext(ctx).
		First(&user, "LOWER(user_email) = LOWER(?)", strings.TrimSpace(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, helper.NewAppError(401, "INVALID_CREDENTIALS", "invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}

	if user.UserStatus != model.UserStatusActive {
		return "", nil, helper.ErrForbidden("account is inactive")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)) != nil {
		return "", nil, helper.NewAppError(401, "INVALID_CREDENTIALS", "invalid email or password")
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) issueToken(user *model.UserModel) (string, error) {
	now := s.Now()
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
}
