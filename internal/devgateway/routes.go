package devgateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Routes builds the gateway's HTTP handler. origins is the CORS allow list.
func (h *Handler) Routes(origins []string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	allowed := map[string]bool{}
	for _, o := range origins {
		allowed[o] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/register", h.Register)
		v1.POST("/client/login", h.ClientLogin)
		v1.POST("/client/register", h.ClientRegister)
	}

	protected := v1.Group("/")
	protected.Use(h.AuthMiddleware())
	{
		// suggestion routes
		protected.GET("/jobs/suggestions", h.JobSuggestions)
		protected.GET("/jobs/skills/suggestions", h.SkillSuggestions)
		protected.GET("/jobs/locations/suggestions", h.LocationSuggestions)
		protected.GET("/candidates/suggestions", h.CandidateSuggestions)

		// interview routes
		protected.GET("/interviews", h.ListInterviews)
		protected.POST("/interviews", h.ScheduleInterview)

		// feedback routes
		protected.GET("/candidates/:id/feedback", h.ListFeedback)
		protected.POST("/candidates/:id/feedback", h.SubmitFeedback)

		// bulk upload
		protected.POST("/candidates/bulk", h.BulkUpload)

		// connection routes
		protected.GET("/client/by-connection/:id", h.ClientByConnectionID)
		protected.POST("/recruiter/confirm-connection", h.ConfirmConnection)
		protected.POST("/recruiter/disconnect", h.Disconnect)
		protected.GET("/recruiter/connection-events", h.ConnectionEvents)
		protected.GET("/client/connection-events", h.ConnectionEvents)
		protected.GET("/client/connected-recruiter", h.ConnectedRecruiter)
		protected.GET("/client/stats", h.ClientStats)
	}

	return r
}
