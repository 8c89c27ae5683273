package model

type InterviewType string

const (
	InterviewOnSite    InterviewType = "on-site"
	InterviewRemote    InterviewType = "remote"
	InterviewVideoMeet InterviewType = "video_meet"
	InterviewVoiceCall InterviewType = "voice_call"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// Interview as returned by the gateway. Older records carry the datetime in
// interview_date, newer ones in scheduled_date; consumers must accept both.
type Interview struct {
	ID             string          `json:"id"`
	CandidateID    string          `json:"candidate_id"`
	JobID          string          `json:"job_id"`
	ScheduledDate  string          `json:"scheduled_date,omitempty"`
	InterviewDate  string          `json:"interview_date,omitempty"`
	InterviewType  InterviewType   `json:"interview_type,omitempty"`
	Interviewer    string          `json:"interviewer,omitempty"`
	MeetingLink    string          `json:"meeting_link,omitempty"`
	MeetingAddress string          `json:"meeting_address,omitempty"`
	MeetingPhone   string          `json:"meeting_phone,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         InterviewStatus `json:"status,omitempty"`
}

// When returns whichever datetime field the record carries.
func (iv Interview) When() string {
	if iv.ScheduledDate != "" {
		return iv.ScheduledDate
	}
	return iv.InterviewDate
}

type ScheduleInterviewReq struct {
	CandidateID    string          `json:"candidate_id" binding:"required"`
	JobID          string          `json:"job_id" binding:"required"`
	InterviewDate  string          `json:"interview_date" binding:"required"`
	Interviewer    string          `json:"interviewer" binding:"required"`
	InterviewType  InterviewType   `json:"interview_type,omitempty"`
	MeetingLink    string          `json:"meeting_link,omitempty"`
	MeetingAddress string          `json:"meeting_address,omitempty"`
	MeetingPhone   string          `json:"meeting_phone,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         InterviewStatus `json:"status,omitempty"`
}
