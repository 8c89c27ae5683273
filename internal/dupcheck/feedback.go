package dupcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// FeedbackWarning is surfaced when a values assessment would duplicate an
// existing one for the same candidate and job.
const FeedbackWarning = "This values assessment is identical to an existing one for this " +
	"candidate and job. Please change at least one value (e.g. ratings, feedback, " +
	"experience level, or job) to submit a new assessment."

// FeedbackDraft is the transient values-assessment form state.
type FeedbackDraft struct {
	CandidateID     string
	JobID           string
	ExperienceLevel string
	FeedbackText    string
	Integrity       int
	Honesty         int
	Discipline      int
	HardWork        int
	Gratitude       int
}

// scores returns the draft's five ratings clamped to the slider bounds.
func (d FeedbackDraft) scores() model.ValuesScores {
	return model.ValuesScores{
		Integrity:  clampRating(d.Integrity, model.ValueRatingMin, model.ValueRatingMax),
		Honesty:    clampRating(d.Honesty, model.ValueRatingMin, model.ValueRatingMax),
		Discipline: clampRating(d.Discipline, model.ValueRatingMin, model.ValueRatingMax),
		HardWork:   clampRating(d.HardWork, model.ValueRatingMin, model.ValueRatingMax),
		Gratitude:  clampRating(d.Gratitude, model.ValueRatingMin, model.ValueRatingMax),
	}
}

// IsFeedbackDuplicate reports whether any existing assessment for the
// candidate matches the draft on job, experience level, comment text and
// all five ratings. The existing list is already scoped per candidate by
// the lookup.
func IsFeedbackDuplicate(existing []model.Feedback, draft FeedbackDraft) bool {
	jobID := strings.TrimSpace(draft.JobID)
	experienceLevel := strings.TrimSpace(draft.ExperienceLevel)
	comments := strings.TrimSpace(draft.FeedbackText)
	want := draft.scores()

	for _, ex := range existing {
		if strings.TrimSpace(ex.JobID) != jobID {
			continue
		}
		if strings.TrimSpace(ex.ExperienceLevel) != experienceLevel {
			continue
		}
		if strings.TrimSpace(ex.Text()) != comments {
			continue
		}
		scores := ex.Scores()
		if scores == nil {
			continue
		}
		if *scores != want {
			continue
		}
		return true
	}
	return false
}

// FeedbackGuard runs the pre-submit duplicate check for values assessments.
type FeedbackGuard struct {
	guard
	Fetch  func(ctx context.Context, candidateID string) ([]model.Feedback, error)
	Submit func(ctx context.Context, candidateID string, req model.SubmitFeedbackReq) error
}

// SubmitAssessment fetches the candidate's assessments fresh, refuses exact
// duplicates with a warning, and otherwise submits. Lookup failures
// propagate; the submit is never attempted on an unverified draft.
func (g *FeedbackGuard) SubmitAssessment(ctx context.Context, draft FeedbackDraft) error {
	g.setWarning("")

	existing, err := g.Fetch(ctx, draft.CandidateID)
	if err != nil {
		return fmt.Errorf("fetch existing feedback: %w", err)
	}

	if IsFeedbackDuplicate(existing, draft) {
		g.setWarning(FeedbackWarning)
		return ErrDuplicate
	}

	scores := draft.scores()
	req := model.SubmitFeedbackReq{
		JobID:           draft.JobID,
		Integrity:       scores.Integrity,
		Honesty:         scores.Honesty,
		Discipline:      scores.Discipline,
		HardWork:        scores.HardWork,
		Gratitude:       scores.Gratitude,
		Comments:        strings.TrimSpace(draft.FeedbackText),
		ExperienceLevel: draft.ExperienceLevel,
	}
	if err := g.Submit(ctx, draft.CandidateID, req); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}
	return nil
}
