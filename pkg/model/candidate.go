package model

// Default application status assigned to uploaded candidates.
const StatusApplied = "applied"

// BulkCandidate is one row of a bulk candidate upload after validation and
// coercion of the editable string row.
type BulkCandidate struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	CVURL           string `json:"cv_url,omitempty"`
	Phone           string `json:"phone,omitempty"`
	ExperienceYears int    `json:"experience_years"`
	Status          string `json:"status"`
	Location        string `json:"location,omitempty"`
	TechnicalSkills string `json:"technical_skills,omitempty"`
	Designation     string `json:"designation,omitempty"`
	EducationLevel  string `json:"education_level,omitempty"`
}

type BulkUploadReq struct {
	Candidates []BulkCandidate `json:"candidates" binding:"required,min=1"`
}

type BulkUploadRes struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ClientStats backs the client dashboard cards.
type ClientStats struct {
	ActiveJobs          int `json:"active_jobs"`
	TotalApplications   int `json:"total_applications"`
	Shortlisted         int `json:"shortlisted"`
	InterviewsScheduled int `json:"interviews_scheduled"`
	OffersMade          int `json:"offers_made"`
	Hired               int `json:"hired"`
}
