package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/session"
	"github.com/farellandr/eventhub/internal/store"
)

const (
	depsKey    = "deps"
	sessionKey = "session"
	userIDKey  = "user_id"
)

// Latency holds the simulated backend delays applied to slow reads.
type Latency struct {
	Events    time.Duration
	Dashboard time.Duration
}

var SimulatedLatency = Latency{
	Events:    500 * time.Millisecond,
	Dashboard: 600 * time.Millisecond,
}

type Deps struct {
	Store     *store.MemoryStore
	Sessions  *session.Manager
	JWTSecret []byte
	JWTExpire time.Duration
	Latency   Latency
	Now       func() time.Time
}

func DepsMiddleware(deps *Deps) gin.HandlerFunc {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return func(c *gin.Context) {
		c.Set(depsKey, deps)
		c.Next()
	}
}

func GetDeps(c *gin.Context) *Deps {
	deps, exists := c.Get(depsKey)
	if !exists {
		return nil
	}
	return deps.(*Deps)
}

func GetSession(c *gin.Context) *session.Store {
	s, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	return s.(*session.Store)
}

// CurrentUser is the signed in user, or nil on public routes.
func CurrentUser(c *gin.Context) *models.User {
	s := GetSession(c)
	if s == nil {
		return nil
	}
	return s.User()
}
