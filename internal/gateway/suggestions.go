package gateway

import (
	"context"
	"strings"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

type suggestionsData[T any] struct {
	Suggestions   []T   `json:"suggestions"`
	HasApplicants *bool `json:"has_applicants,omitempty"`
}

// JobSuggestions searches jobs by title/department for search-as-you-type.
func (c *Client) JobSuggestions(ctx context.Context, q string) ([]model.JobSuggestion, error) {
	var data suggestionsData[model.JobSuggestion]
	if err := c.get(ctx, "/v1/jobs/suggestions?q="+queryEscape(q), &data); err != nil {
		return nil, err
	}
	return data.Suggestions, nil
}

// CandidateSuggestions searches the recruiter's applicants by name/email.
// HasApplicants lets the caller tell "no matches" from "no applicants".
func (c *Client) CandidateSuggestions(ctx context.Context, q string) (*model.CandidateSuggestionsRes, error) {
	if strings.TrimSpace(q) == "" {
		return &model.CandidateSuggestionsRes{}, nil
	}
	var data suggestionsData[model.CandidateSuggestion]
	if err := c.get(ctx, "/v1/candidates/suggestions?q="+queryEscape(q), &data); err != nil {
		return nil, err
	}
	return &model.CandidateSuggestionsRes{
		Suggestions:   data.Suggestions,
		HasApplicants: data.HasApplicants,
	}, nil
}

// SkillSuggestions searches skills collected from active jobs' requirements.
func (c *Client) SkillSuggestions(ctx context.Context, q string) ([]model.TermSuggestion, error) {
	var data suggestionsData[model.TermSuggestion]
	if err := c.get(ctx, "/v1/jobs/skills/suggestions?q="+queryEscape(q), &data); err != nil {
		return nil, err
	}
	return data.Suggestions, nil
}

// LocationSuggestions searches locations from active jobs.
func (c *Client) LocationSuggestions(ctx context.Context, q string) ([]model.TermSuggestion, error) {
	var data suggestionsData[model.TermSuggestion]
	if err := c.get(ctx, "/v1/jobs/locations/suggestions?q="+queryEscape(q), &data); err != nil {
		return nil, err
	}
	return data.Suggestions, nil
}
