package gateway

import (
	"context"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// Interviews lists the recruiter's scheduled interviews. Duplicate checks
// call this immediately before every check; the list is never cached.
func (c *Client) Interviews(ctx context.Context) ([]model.Interview, error) {
	var data struct {
		Interviews []model.Interview `json:"interviews"`
	}
	if err := c.get(ctx, "/v1/interviews", &data); err != nil {
		return nil, err
	}
	return data.Interviews, nil
}

func (c *Client) ScheduleInterview(ctx context.Context, req model.ScheduleInterviewReq) (*model.Interview, error) {
	var iv model.Interview
	if err := c.post(ctx, "/v1/interviews", req, &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}
