package model

// Value rating bounds for the five-pillar assessment sliders.
const (
	ValueRatingMin = 1
	ValueRatingMax = 5
)

var ExperienceLevels = []string{"Entry", "Mid", "Senior", "Lead"}

// ValuesScores holds the five pillar ratings, each in [1,5].
type ValuesScores struct {
	Integrity  int `json:"integrity"`
	Honesty    int `json:"honesty"`
	Discipline int `json:"discipline"`
	HardWork   int `json:"hard_work"`
	Gratitude  int `json:"gratitude"`
}

// Feedback is a values assessment on record for a candidate. Older records
// carry the free text in comments and the scores in values_scores; newer
// ones use feedback_text and values_assessment.
type Feedback struct {
	ID               string        `json:"id,omitempty"`
	CandidateID      string        `json:"candidate_id,omitempty"`
	JobID            string        `json:"job_id"`
	ExperienceLevel  string        `json:"experience_level,omitempty"`
	FeedbackText     string        `json:"feedback_text,omitempty"`
	Comments         string        `json:"comments,omitempty"`
	ValuesAssessment *ValuesScores `json:"values_assessment,omitempty"`
	ValuesScores     *ValuesScores `json:"values_scores,omitempty"`
	ReviewerName     string        `json:"reviewer_name,omitempty"`
	InterviewDate    string        `json:"interview_date,omitempty"`
}

// Text returns the free-form comment regardless of which field carries it.
func (f Feedback) Text() string {
	if f.FeedbackText != "" {
		return f.FeedbackText
	}
	return f.Comments
}

// Scores returns whichever score block the record carries.
func (f Feedback) Scores() *ValuesScores {
	if f.ValuesAssessment != nil {
		return f.ValuesAssessment
	}
	return f.ValuesScores
}

type SubmitFeedbackReq struct {
	JobID           string `json:"job_id" binding:"required"`
	Integrity       int    `json:"integrity"`
	Honesty         int    `json:"honesty"`
	Discipline      int    `json:"discipline"`
	HardWork        int    `json:"hard_work"`
	Gratitude       int    `json:"gratitude"`
	Comments        string `json:"comments,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}
