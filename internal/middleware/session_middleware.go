package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "brewrain_session"
	sessionContextKey = "session_id"
)

// SessionMiddleware attaches an anonymous visitor session to each request.
// There are no accounts; the cookie only scopes a cart to one browser
// session.
type SessionMiddleware struct {
	ttl time.Duration
}

func NewSessionMiddleware(ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{ttl: ttl}
}

// Attach reads the session cookie, issuing a fresh id when absent, and puts
// the session id in the request context.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookieName, sessionID, int(m.ttl.Seconds()), "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session id from gin context.
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// SetSessionID stores a session id in gin context. Exposed for tests that
// mount handlers without the middleware chain.
func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(sessionContextKey, sessionID)
}
