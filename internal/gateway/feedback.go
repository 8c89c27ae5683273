package gateway

import (
	"context"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// CandidateFeedback lists the values assessments on record for a candidate.
func (c *Client) CandidateFeedback(ctx context.Context, candidateID string) ([]model.Feedback, error) {
	var data struct {
		Feedback []model.Feedback `json:"feedback"`
	}
	if err := c.get(ctx, "/v1/candidates/"+queryEscape(candidateID)+"/feedback", &data); err != nil {
		return nil, err
	}
	return data.Feedback, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, candidateID string, req model.SubmitFeedbackReq) (*model.Feedback, error) {
	var fb model.Feedback
	if err := c.post(ctx, "/v1/candidates/"+queryEscape(candidateID)+"/feedback", req, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}
