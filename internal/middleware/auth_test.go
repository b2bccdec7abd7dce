package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubParser struct {
	id  string
	err error
}

func (s stubParser) ParseToken(string) (string, error) {
	return s.id, s.err
}

func sessionRouter(parser TokenParser) http.Handler {
	r := ginext.New("test")
	r.GET("/protected", Session(parser), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c)})
	})
	return r
}

func TestSession_ValidToken(t *testing.T) {
	r := sessionRouter(stubParser{id: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestSession_MissingHeader(t *testing.T) {
	r := sessionRouter(stubParser{id: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_InvalidToken(t *testing.T) {
	r := sessionRouter(stubParser{err: errors.New("expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_NonBearerScheme(t *testing.T) {
	r := sessionRouter(stubParser{id: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
