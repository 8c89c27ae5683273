package devgateway

import (
	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

// BulkUpload inserts candidates, skipping rows whose email already exists.
func (h *Handler) BulkUpload(c *gin.Context) {
	var req model.BulkUploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inserted, skipped := h.Store.AddCandidates(req.Candidates)
	h.Logger.Sugar().Infow("bulk upload", "inserted", inserted, "skipped", skipped)
	response.Created(c, model.BulkUploadRes{Inserted: inserted, Skipped: skipped})
}
