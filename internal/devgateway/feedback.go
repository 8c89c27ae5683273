package devgateway

import (
	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

func (h *Handler) ListFeedback(c *gin.Context) {
	candidateID := c.Param("id")
	response.OK(c, gin.H{"feedback": h.Store.FeedbackFor(candidateID)})
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	candidateID := c.Param("id")
	var req model.SubmitFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	for _, rating := range []int{req.Integrity, req.Honesty, req.Discipline, req.HardWork, req.Gratitude} {
		if rating < model.ValueRatingMin || rating > model.ValueRatingMax {
			response.ValidationError(c, "value ratings must be between 1 and 5")
			return
		}
	}

	fb := h.Store.AddFeedback(candidateID, model.Feedback{
		JobID:           req.JobID,
		ExperienceLevel: req.ExperienceLevel,
		FeedbackText:    req.Comments,
		ValuesAssessment: &model.ValuesScores{
			Integrity:  req.Integrity,
			Honesty:    req.Honesty,
			Discipline: req.Discipline,
			HardWork:   req.HardWork,
			Gratitude:  req.Gratitude,
		},
	})
	response.Created(c, fb)
}
