package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"campuseval_backend/internals/features/users/users/model"
)

func TestIssueTokenClaims(t *testing.T) {
	fixed := time.Now().Truncate(time.Second)
	svc := &AuthService{JWTSecret: "test-secret", Now: func() time.Time { return fixed }}
	user := &model.UserModel{
		UserID:   uuid.New(),
		UserRole: "enseignant",
	}

	raw, err := svc.issueToken(user)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tok.Method)
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != user.UserID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.UserID)
	}
	if claims["role"] != "enseignant" {
		t.Errorf("role = %v", claims["role"])
	}
	exp := int64(claims["exp"].(float64))
	if got, want := exp, fixed.Add(accessTokenTTL).Unix(); got != want {
		t.Errorf("exp = %d, want %d", got, want)
	}
}
