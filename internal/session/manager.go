package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/pkg/config"
)

// Manager ties the store and cookie codec together for request handling.
type Manager struct {
	store      Store
	codec      *Codec
	logger     *zap.Logger
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager constructs a Manager from session configuration.
func NewManager(store Store, cfg config.SessionConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:      store,
		codec:      NewCodec(cfg.SecretKey),
		logger:     logger,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

// Issue persists a new session and sets the signed cookie on the response.
func (m *Manager) Issue(c *gin.Context, sess *models.Session) error {
	sess.ID = uuid.NewString()
	sess.IssuedAt = time.Now().UTC()
	if err := m.store.Save(c.Request.Context(), sess, m.ttl); err != nil {
		return err
	}
	token, err := m.codec.Encode(sess.ID, m.ttl)
	if err != nil {
		return err
	}
	c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Load resolves the request cookie into a stored session.
func (m *Manager) Load(c *gin.Context) (*models.Session, error) {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return nil, ErrNotFound
	}
	id, err := m.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return m.store.Find(c.Request.Context(), id)
}

// Clear deletes the stored session and expires the cookie.
func (m *Manager) Clear(c *gin.Context) {
	if token, err := c.Cookie(m.cookieName); err == nil {
		if id, err := m.codec.Decode(token); err == nil {
			if err := m.store.Delete(c.Request.Context(), id); err != nil {
				m.logger.Warn("failed to delete session", zap.Error(err))
			}
		}
	}
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// Flash queues a one-shot notice for the given session. Failures are logged
// and swallowed; a lost notice must never abort the request.
func (m *Manager) Flash(c *gin.Context, sess *models.Session, level, message string) {
	if sess == nil {
		return
	}
	if err := m.store.PushFlash(c.Request.Context(), sess.ID, models.Flash{Level: level, Message: message}); err != nil {
		m.logger.Warn("failed to push flash", zap.Error(err))
	}
}

// PopFlashes drains pending notices for the given session.
func (m *Manager) PopFlashes(c *gin.Context, sess *models.Session) []models.Flash {
	if sess == nil {
		return nil
	}
	flashes, err := m.store.PopFlashes(c.Request.Context(), sess.ID)
	if err != nil {
		m.logger.Warn("failed to pop flashes", zap.Error(err))
		return nil
	}
	return flashes
}
