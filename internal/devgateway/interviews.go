package devgateway

import (
	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

func (h *Handler) ListInterviews(c *gin.Context) {
	response.OK(c, gin.H{"interviews": h.Store.Interviews()})
}

// ScheduleInterview stores the interview as-is. Deliberately no duplicate
// check here: deduplication is the SDK's pre-submit responsibility, and the
// fixture must accept duplicates so that behavior stays testable.
func (h *Handler) ScheduleInterview(c *gin.Context) {
	var req model.ScheduleInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = model.InterviewScheduled
	}
	iv := h.Store.AddInterview(model.Interview{
		CandidateID:    req.CandidateID,
		JobID:          req.JobID,
		ScheduledDate:  req.InterviewDate,
		InterviewType:  req.InterviewType,
		Interviewer:    req.Interviewer,
		MeetingLink:    req.MeetingLink,
		MeetingAddress: req.MeetingAddress,
		MeetingPhone:   req.MeetingPhone,
		Notes:          req.Notes,
		Status:         status,
	})
	response.Created(c, iv)
}
