package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

func newJWTRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(), func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func request(t *testing.T, r http.Handler, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestJWTMiddleware_Valid(t *testing.T) {
	r := newJWTRouter(t)

	token, err := service.GenerateJWT("alice")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rr := request(t, r, "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	r := newJWTRouter(t)

	rr := request(t, r, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	r := newJWTRouter(t)

	rr := request(t, r, "Basic dXNlcjpwYXNz")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTMiddleware_BadToken(t *testing.T) {
	r := newJWTRouter(t)

	rr := request(t, r, "Bearer not-a-token")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
