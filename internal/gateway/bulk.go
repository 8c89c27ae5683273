package gateway

import (
	"context"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// BulkUploadCandidates submits validated candidate rows in one request.
func (c *Client) BulkUploadCandidates(ctx context.Context, req model.BulkUploadReq) (*model.BulkUploadRes, error) {
	var res model.BulkUploadRes
	if err := c.post(ctx, "/v1/candidates/bulk", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
