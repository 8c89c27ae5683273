package devgateway

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

func (h *Handler) JobSuggestions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	response.OK(c, gin.H{"suggestions": h.Store.SearchJobs(q)})
}

func (h *Handler) CandidateSuggestions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	suggestions, hasApplicants := h.Store.SearchCandidates(q)
	response.OK(c, gin.H{
		"suggestions":    suggestions,
		"has_applicants": hasApplicants,
	})
}

func (h *Handler) SkillSuggestions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	response.OK(c, gin.H{"suggestions": h.Store.SearchTerms(q, false)})
}

func (h *Handler) LocationSuggestions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	response.OK(c, gin.H{"suggestions": h.Store.SearchTerms(q, true)})
}
