package auth

import (
	"testing"

	"github.com/almrmi/serramenti/internal/config"
	"github.com/almrmi/serramenti/internal/constant"
)

// Generate a token pair and verify both tokens round-trip with the expected
// payload and type.
func TestJWT(t *testing.T) {
	cfg := config.AuthConfig{JWT_SECRET: "test-secret"}

	jwtService := NewJwt(cfg, nil)
	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{
		ID:        "id1234",
		Email:     "test@example.com",
		FirstName: "Mario",
		LastName:  "Rossi",
	})
	if err != nil {
		t.Fatalf("An error occurred during token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Errorf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("refresh token type = %q, want %q", refreshClaims.Type, constant.JWT_TYPE_REFRESH)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Errorf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("access token type = %q, want %q", accessClaims.Type, constant.JWT_TYPE_ACCESS)
	}
	if accessClaims.User.ID != "id1234" || accessClaims.User.Email != "test@example.com" {
		t.Errorf("access token payload = %+v, want original payload", accessClaims.User)
	}
}

func TestVerifyJwtTokenRejectsWrongSecret(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "secret-a"}, nil)
	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1234"})
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	other := NewJwt(config.AuthConfig{JWT_SECRET: "secret-b"}, nil)
	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}
