package dupcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// InterviewWarning is surfaced when scheduling would duplicate an existing
// interview exactly.
const InterviewWarning = "This interview is identical to a previously scheduled one. " +
	"Scheduling has been prevented. Please change the date/time, interview type, " +
	"meeting details, interviewer, or notes and try again."

// InterviewDraft is the transient scheduling form state, compared against
// previously scheduled interviews before any network submission.
type InterviewDraft struct {
	JobID          string
	Date           string // YYYY-MM-DD
	Time           string // HH:mm
	Type           model.InterviewType
	Interviewer    string
	MeetingLink    string
	MeetingAddress string
	MeetingPhone   string
	Notes          string
}

// DateTime joins date and time into the wire datetime.
func (d InterviewDraft) DateTime() string {
	return d.Date + "T" + d.Time + ":00"
}

// Validate returns the form's inline validation errors, empty when the
// draft may be submitted. Meeting contact requirements depend on the type:
// on-site/remote need address and/or phone, video needs link and/or phone,
// voice calls need a phone.
func (d InterviewDraft) Validate(candidateIDs []string) []string {
	var errs []string
	if len(candidateIDs) == 0 {
		errs = append(errs, "Select at least one candidate")
	}
	if d.JobID == "" {
		errs = append(errs, "Select a job")
	}
	if d.Date == "" {
		errs = append(errs, "Select interview date")
	}
	if d.Time == "" {
		errs = append(errs, "Select interview time")
	}
	if d.Type == "" {
		errs = append(errs, "Select interview type")
	}
	if strings.TrimSpace(d.Interviewer) == "" {
		errs = append(errs, "Enter interviewer name")
	}

	hasAddress := strings.TrimSpace(d.MeetingAddress) != ""
	hasPhone := strings.TrimSpace(d.MeetingPhone) != ""
	hasLink := strings.TrimSpace(d.MeetingLink) != ""

	checkPhone := func() {
		if _, err := ValidatePhone(d.MeetingPhone); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid phone number for Meet Type: %v", err))
		}
	}
	switch d.Type {
	case model.InterviewOnSite, model.InterviewRemote:
		if !hasAddress && !hasPhone {
			errs = append(errs, "Enter address and/or phone number for Meet Type")
		} else if hasPhone {
			checkPhone()
		}
	case model.InterviewVideoMeet:
		if !hasLink && !hasPhone {
			errs = append(errs, "Enter meeting link and/or phone number for Meet Type")
		} else if hasPhone {
			checkPhone()
		}
	case model.InterviewVoiceCall:
		if !hasPhone {
			errs = append(errs, "Enter phone number for Meet Type")
		} else {
			checkPhone()
		}
	}
	return errs
}

// normalizedPhone returns the canonical phone when valid, else the raw value.
func (d InterviewDraft) normalizedPhone() string {
	p := strings.TrimSpace(d.MeetingPhone)
	if p == "" {
		return ""
	}
	if canonical, err := ValidatePhone(p); err == nil {
		return canonical
	}
	return p
}

// IsInterviewDuplicate reports whether an existing interview for the same
// candidate matches the draft on the full composite key: job, datetime at
// minute resolution, type, interviewer, link, address, phone subscriber
// digits and notes, all trimmed.
func IsInterviewDuplicate(existing []model.Interview, candidateID string, draft InterviewDraft) bool {
	proposedDateTime := NormalizeDateTime(draft.DateTime())
	proposedType := strings.TrimSpace(string(draft.Type))
	proposedInterviewer := strings.TrimSpace(draft.Interviewer)
	proposedLink := strings.TrimSpace(draft.MeetingLink)
	proposedAddress := strings.TrimSpace(draft.MeetingAddress)
	proposedPhone := phoneKey(draft.MeetingPhone)
	proposedNotes := strings.TrimSpace(draft.Notes)

	for _, ex := range existing {
		if ex.CandidateID != candidateID {
			continue
		}
		if ex.JobID != draft.JobID {
			continue
		}
		if NormalizeDateTime(ex.When()) != proposedDateTime {
			continue
		}
		if strings.TrimSpace(string(ex.InterviewType)) != proposedType {
			continue
		}
		if strings.TrimSpace(ex.Interviewer) != proposedInterviewer {
			continue
		}
		if strings.TrimSpace(ex.MeetingLink) != proposedLink {
			continue
		}
		if strings.TrimSpace(ex.MeetingAddress) != proposedAddress {
			continue
		}
		if phoneKey(ex.MeetingPhone) != proposedPhone {
			continue
		}
		if strings.TrimSpace(ex.Notes) != proposedNotes {
			continue
		}
		return true
	}
	return false
}

// InterviewGuard runs the pre-submit duplicate check for interview
// scheduling, fetching the existing records fresh on every attempt.
type InterviewGuard struct {
	guard
	Fetch  func(ctx context.Context) ([]model.Interview, error)
	Submit func(ctx context.Context, req model.ScheduleInterviewReq) error
}

// ScheduleAll checks every selected candidate and, when none duplicates an
// existing interview, submits one interview per candidate. The first
// duplicate found aborts the whole batch before anything is submitted. A
// failed lookup is returned as-is and never treated as "no duplicates".
func (g *InterviewGuard) ScheduleAll(ctx context.Context, candidateIDs []string, draft InterviewDraft) (int, error) {
	g.setWarning("")

	existing, err := g.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch existing interviews: %w", err)
	}

	for _, candidateID := range candidateIDs {
		if IsInterviewDuplicate(existing, candidateID, draft) {
			g.setWarning(InterviewWarning)
			return 0, ErrDuplicate
		}
	}

	phone := draft.normalizedPhone()
	scheduled := 0
	for _, candidateID := range candidateIDs {
		req := model.ScheduleInterviewReq{
			CandidateID:    candidateID,
			JobID:          draft.JobID,
			InterviewDate:  draft.DateTime(),
			Interviewer:    strings.TrimSpace(draft.Interviewer),
			InterviewType:  draft.Type,
			MeetingLink:    strings.TrimSpace(draft.MeetingLink),
			MeetingAddress: strings.TrimSpace(draft.MeetingAddress),
			MeetingPhone:   phone,
			Notes:          strings.TrimSpace(draft.Notes),
			Status:         model.InterviewScheduled,
		}
		if err := g.Submit(ctx, req); err != nil {
			return scheduled, fmt.Errorf("schedule interview for candidate %s: %w", candidateID, err)
		}
		scheduled++
	}
	return scheduled, nil
}
