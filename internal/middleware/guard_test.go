package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func guardRouter(t *testing.T, profiles *mocks.MockProfileRepo) http.Handler {
	t.Helper()

	g := NewGuard(profiles, newTestLogger(t))

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set("user_id", "u1")
		c.Next()
	})
	r.GET("/user", g.RequireUser(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	r.GET("/staff", g.RequireStaff(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_ActiveUser(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	profiles.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleUser, Status: domain.AccountActive}, nil)

	r := guardRouter(t, profiles)

	assert.Equal(t, http.StatusOK, get(r, "/user").Code)
}

func TestGuard_UserCannotReachStaff(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	profiles.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleUser, Status: domain.AccountActive}, nil)

	r := guardRouter(t, profiles)

	assert.Equal(t, http.StatusForbidden, get(r, "/staff").Code)
}

func TestGuard_AdminReachesStaff(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	profiles.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleAdmin, Status: domain.AccountActive}, nil)

	r := guardRouter(t, profiles)

	assert.Equal(t, http.StatusOK, get(r, "/staff").Code)
}

func TestGuard_DisabledAdminDenied(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	profiles.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleAdmin, Status: domain.AccountDisabled}, nil)

	r := guardRouter(t, profiles)

	assert.Equal(t, http.StatusForbidden, get(r, "/staff").Code)
}

func TestGuard_LookupFailureDenies(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	profiles.EXPECT().GetByID(mock.Anything, "u1").Return(nil, assert.AnError)

	r := guardRouter(t, profiles)

	assert.Equal(t, http.StatusForbidden, get(r, "/user").Code)
}
