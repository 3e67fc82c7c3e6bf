package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/srs-portal/internal/middleware"
	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	"github.com/noah-isme/srs-portal/pkg/config"
)

type stubStore struct {
	flashes map[string][]models.Flash
}

func newStubStore() *stubStore {
	return &stubStore{flashes: make(map[string][]models.Flash)}
}

func (s *stubStore) Save(_ context.Context, _ *models.Session, _ time.Duration) error { return nil }

func (s *stubStore) Find(_ context.Context, _ string) (*models.Session, error) {
	return nil, session.ErrNotFound
}

func (s *stubStore) Delete(_ context.Context, _ string) error { return nil }

func (s *stubStore) PushFlash(_ context.Context, id string, flash models.Flash) error {
	s.flashes[id] = append(s.flashes[id], flash)
	return nil
}

func (s *stubStore) PopFlashes(_ context.Context, id string) ([]models.Flash, error) {
	flashes := s.flashes[id]
	delete(s.flashes, id)
	return flashes, nil
}

type stubLecturerService struct {
	calls int
	page  *service.LecturerPage
}

func (s *stubLecturerService) Page(_ context.Context, _, _ int64) (*service.LecturerPage, error) {
	s.calls++
	return s.page, nil
}

type stubRosterExport struct {
	calls int
	doc   *service.Document
	err   error
}

func (s *stubRosterExport) CourseRoster(_ context.Context, _ int64, _ string) (*service.Document, error) {
	s.calls++
	return s.doc, s.err
}

func newSessionManager(store session.Store) *session.Manager {
	return session.NewManager(store, config.SessionConfig{
		SecretKey:  "test-secret",
		CookieName: "srs_session",
		TTL:        time.Hour,
	}, nil)
}

func newHandlerContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestLecturerDashboardUnlinkedAccount(t *testing.T) {
	store := newStubStore()
	svc := &stubLecturerService{}
	h := NewLecturerHandler(svc, &stubRosterExport{}, newSessionManager(store), nil)

	c, w := newHandlerContext(t, "/lecturer")
	c.Set(middleware.ContextSessionKey, &models.Session{ID: "session-1", Username: "kowalski", Role: models.RoleLecturer})

	h.Dashboard(c)

	assert.Zero(t, svc.calls)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	flashes := store.flashes["session-1"]
	require.Len(t, flashes, 1)
	assert.Equal(t, "Your lecturer account is not linked to a lecturer record.", flashes[0].Message)
}

func TestLecturerExportInvalidCourseID(t *testing.T) {
	store := newStubStore()
	exports := &stubRosterExport{}
	lecturerID := int64(7)
	h := NewLecturerHandler(&stubLecturerService{}, exports, newSessionManager(store), nil)

	c, w := newHandlerContext(t, "/lecturer/export?course_id=abc")
	c.Set(middleware.ContextSessionKey, &models.Session{ID: "session-1", Role: models.RoleLecturer, LecturerID: &lecturerID})

	h.ExportRoster(c)

	assert.Zero(t, exports.calls)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/lecturer", w.Header().Get("Location"))
}

func TestLecturerExportStreamsDocument(t *testing.T) {
	store := newStubStore()
	exports := &stubRosterExport{doc: &service.Document{
		Content:     []byte("Student ID,Student\n"),
		ContentType: "text/csv",
		Filename:    "roster-3.csv",
	}}
	lecturerID := int64(7)
	h := NewLecturerHandler(&stubLecturerService{}, exports, newSessionManager(store), nil)

	c, w := newHandlerContext(t, "/lecturer/export?course_id=3&format=csv")
	c.Set(middleware.ContextSessionKey, &models.Session{ID: "session-1", Role: models.RoleLecturer, LecturerID: &lecturerID})

	h.ExportRoster(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "roster-3.csv")
	assert.Equal(t, 1, exports.calls)
}
