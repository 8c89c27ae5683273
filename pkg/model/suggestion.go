package model

// EmptyOptionID marks the synthetic "no results" suggestion row. It is
// never a real entity id and must not be committed as a selection.
const EmptyOptionID = "__empty__"

type JobSuggestion struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
}

func (s JobSuggestion) SuggestionID() string { return s.ID }

type CandidateSuggestion struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	TechnicalSkills string `json:"technical_skills,omitempty"`
	Location        string `json:"location,omitempty"`
}

func (s CandidateSuggestion) SuggestionID() string { return s.ID }

// TermSuggestion is a plain-text suggestion (skills, locations).
type TermSuggestion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (s TermSuggestion) SuggestionID() string { return s.ID }

// CandidateSuggestionsRes carries has_applicants so the recruiter UI can
// distinguish "no matches" from "no applicants at all".
type CandidateSuggestionsRes struct {
	Suggestions   []CandidateSuggestion `json:"suggestions"`
	HasApplicants *bool                 `json:"has_applicants"`
}
