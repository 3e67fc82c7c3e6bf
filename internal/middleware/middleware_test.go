package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/session"
	"github.com/noah-isme/srs-portal/pkg/config"
)

type memoryStore struct {
	sessions map[string]*models.Session
	flashes  map[string][]models.Flash
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*models.Session),
		flashes:  make(map[string][]models.Flash),
	}
}

func (s *memoryStore) Save(_ context.Context, sess *models.Session, _ time.Duration) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memoryStore) Find(_ context.Context, id string) (*models.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *memoryStore) PushFlash(_ context.Context, id string, flash models.Flash) error {
	s.flashes[id] = append(s.flashes[id], flash)
	return nil
}

func (s *memoryStore) PopFlashes(_ context.Context, id string) ([]models.Flash, error) {
	flashes := s.flashes[id]
	delete(s.flashes, id)
	return flashes, nil
}

func newManager(store session.Store) *session.Manager {
	return session.NewManager(store, config.SessionConfig{
		SecretKey:  "test-secret",
		CookieName: "srs_session",
		TTL:        time.Hour,
	}, nil)
}

func issueCookie(t *testing.T, manager *session.Manager, sess *models.Session) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, manager.Issue(c, sess))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := newManager(newMemoryStore())

	r := gin.New()
	r.GET("/dashboard", RequireSession(manager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionAttachesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := newManager(newMemoryStore())
	cookie := issueCookie(t, manager, &models.Session{UserID: 1, Username: "admin", Role: models.RoleAdmin})

	var attached *models.Session
	r := gin.New()
	r.GET("/dashboard", RequireSession(manager), func(c *gin.Context) {
		attached = SessionFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, attached)
	assert.Equal(t, "admin", attached.Username)
}

func TestRequireRolesAllowsMatchCaseInsensitive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemoryStore()
	manager := newManager(store)
	cookie := issueCookie(t, manager, &models.Session{UserID: 1, Username: "admin", Role: models.Role("Admin")})

	r := gin.New()
	r.GET("/user-accounts", RequireSession(manager), RequireRoles(manager, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/user-accounts", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesDeniesWithFlash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemoryStore()
	manager := newManager(store)
	sess := &models.Session{UserID: 2, Username: "lecturer", Role: models.RoleLecturer}
	cookie := issueCookie(t, manager, sess)

	handlerCalled := false
	r := gin.New()
	r.GET("/user-accounts", RequireSession(manager), RequireRoles(manager, models.RoleAdmin), func(c *gin.Context) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/user-accounts", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	flashes := store.flashes[sess.ID]
	require.Len(t, flashes, 1)
	assert.Equal(t, "Access denied.", flashes[0].Message)
}

func TestRequireRolesNoHierarchy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := newManager(newMemoryStore())
	cookie := issueCookie(t, manager, &models.Session{UserID: 1, Username: "admin", Role: models.RoleAdmin})

	r := gin.New()
	r.GET("/lecturer", RequireSession(manager), RequireRoles(manager, models.RoleLecturer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/lecturer", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}
