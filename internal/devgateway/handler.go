package devgateway

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/auth"
)

type Handler struct {
	Logger    *zap.Logger
	Store     *Store
	Hub       *Hub
	JWTSecret string
	JWTTTL    time.Duration
	Heartbeat time.Duration
}

// GetClaimsFromContext retrieves the verified claims set by the auth
// middleware.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
