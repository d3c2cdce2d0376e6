package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bamboo/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, userID, role string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func TestValidateJWTRoundTrip(t *testing.T) {
	token := signToken(t, "u42", "dealer", time.Hour)

	claims, err := ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u42", claims.UserID)
	assert.Equal(t, "dealer", claims.Role)
}

func TestValidateJWTRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"Bearer ",
		"Bearer not-a-token",
		"Basic abc123",
		signToken(t, "u1", "citizen", time.Hour), // missing Bearer prefix
	}
	for _, header := range cases {
		_, err := ValidateJWT(header)
		assert.Error(t, err, header)
	}
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token := signToken(t, "u1", "citizen", -time.Minute)

	_, err := ValidateJWT("Bearer " + token)
	assert.Error(t, err)
}

func TestAuthenticatePutsIdentityInContext(t *testing.T) {
	var gotUserID, gotRole string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRole, _ = r.Context().Value(globals.RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u7", "citizen", time.Hour))
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u7", gotUserID)
	assert.Equal(t, "citizen", gotRole)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "msg")
}

func TestRequireRole(t *testing.T) {
	inner := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	}
	handler := Authenticate(RequireRole(inner, "dealer"))

	// dealer passes
	req := httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "d1", "dealer", time.Hour))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// citizen is denied
	req = httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "c1", "citizen", time.Hour))
	rec = httptest.NewRecorder()
	handler(rec, req, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
