// Package devgateway is an in-memory stand-in for the portal gateway: the
// same REST+SSE surface the SDK consumes, backed by seeded fixture data.
// It exists for local development and integration tests; it implements no
// real business rules.
package devgateway

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         model.Role
	CompanyName  string
	ConnectionID string // client accounts only
	PasswordHash string
}

type Job struct {
	model.JobSuggestion
	Skills   []string
	Location string
	Active   bool
}

// Pairing is the single recruiter<->client connection the dev gateway
// models.
type Pairing struct {
	ConnectionID  string
	ClientID      string
	CompanyName   string
	RecruiterID   string
	RecruiterName string
	Connected     bool
}

type Store struct {
	mu         sync.RWMutex
	users      map[string]*User // by email
	jobs       []Job
	candidates []model.CandidateSuggestion
	interviews []model.Interview
	feedback   map[string][]model.Feedback // by candidate id
	pairing    *Pairing
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*User),
		feedback: make(map[string][]model.Feedback),
	}
}

// Seed loads the demo fixture: one account per role, a few jobs and
// applicants, and an unconnected pairing for the demo client.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	connectionID := strings.Replace(uuid.NewString(), "-", "", -1)[:24]
	s.addUserLocked("Riya Sharma", "recruiter@demo.local", "recruiter123", model.RoleRecruiter, "")
	s.addUserLocked("Arjun Patel", "candidate@demo.local", "candidate123", model.RoleCandidate, "")
	client := s.addUserLocked("Acme HR", "client@demo.local", "client123", model.RoleClient, "Acme Corp")
	client.ConnectionID = connectionID
	s.pairing = &Pairing{
		ConnectionID: connectionID,
		ClientID:     client.ID,
		CompanyName:  client.CompanyName,
	}

	s.jobs = []Job{
		{JobSuggestion: model.JobSuggestion{ID: uuid.NewString(), Title: "Backend Engineer", Department: "Engineering"}, Skills: []string{"Go", "PostgreSQL", "Docker"}, Location: "Bangalore", Active: true},
		{JobSuggestion: model.JobSuggestion{ID: uuid.NewString(), Title: "Frontend Engineer", Department: "Engineering"}, Skills: []string{"TypeScript", "React"}, Location: "Pune", Active: true},
		{JobSuggestion: model.JobSuggestion{ID: uuid.NewString(), Title: "HR Generalist", Department: "People"}, Skills: []string{"Recruiting", "Onboarding"}, Location: "Mumbai", Active: true},
	}
	s.candidates = []model.CandidateSuggestion{
		{ID: uuid.NewString(), Name: "Arjun Patel", Email: "candidate@demo.local", TechnicalSkills: "Go, PostgreSQL", Location: "Bangalore"},
		{ID: uuid.NewString(), Name: "Sneha Iyer", Email: "sneha@demo.local", TechnicalSkills: "React, TypeScript", Location: "Pune"},
		{ID: uuid.NewString(), Name: "Vikram Rao", Email: "vikram@demo.local", TechnicalSkills: "Java, Spring", Location: "Chennai"},
	}
}

func (s *Store) addUserLocked(name, email, password string, role model.Role, company string) *User {
	hash, _ := pkg.HashPassword(password)
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		CompanyName:  company,
		PasswordHash: hash,
	}
	s.users[email] = u
	return u
}

// AddUser registers a new account; it fails when the email is taken.
func (s *Store) AddUser(name, email, password string, role model.Role, company string) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return nil, false
	}
	u := s.addUserLocked(name, email, password, role, company)
	if role == model.RoleClient {
		u.ConnectionID = strings.Replace(uuid.NewString(), "-", "", -1)[:24]
	}
	return u, true
}

// Authenticate checks credentials; role "" matches any account.
func (s *Store) Authenticate(email, password string, role model.Role) *User {
	s.mu.RLock()
	u := s.users[email]
	s.mu.RUnlock()
	if u == nil {
		return nil
	}
	if role != "" && u.Role != role {
		return nil
	}
	if pkg.ComparePassword(u.PasswordHash, password) != nil {
		return nil
	}
	return u
}

func (s *Store) UserByID(id string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Store) SearchJobs(q string) []model.JobSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.JobSuggestion{}
	for _, j := range s.jobs {
		if !j.Active {
			continue
		}
		if contains(j.Title, q) || contains(j.Department, q) {
			out = append(out, j.JobSuggestion)
		}
	}
	return out
}

func (s *Store) SearchCandidates(q string) ([]model.CandidateSuggestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.CandidateSuggestion{}
	for _, c := range s.candidates {
		if contains(c.Name, q) || contains(c.Email, q) {
			out = append(out, c)
		}
	}
	return out, len(s.candidates) > 0
}

// SearchTerms searches skills or locations collected from active jobs.
func (s *Store) SearchTerms(q string, locations bool) []model.TermSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	out := []model.TermSuggestion{}
	for _, j := range s.jobs {
		if !j.Active {
			continue
		}
		terms := j.Skills
		if locations {
			terms = []string{j.Location}
		}
		for _, t := range terms {
			if t == "" || seen[t] || !contains(t, q) {
				continue
			}
			seen[t] = true
			out = append(out, model.TermSuggestion{ID: t, Label: t})
		}
	}
	return out
}

func (s *Store) Interviews() []model.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Interview, len(s.interviews))
	copy(out, s.interviews)
	return out
}

func (s *Store) AddInterview(iv model.Interview) model.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv.ID = uuid.NewString()
	s.interviews = append(s.interviews, iv)
	return iv
}

func (s *Store) FeedbackFor(candidateID string) []model.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.feedback[candidateID]
	out := make([]model.Feedback, len(list))
	copy(out, list)
	return out
}

func (s *Store) AddFeedback(candidateID string, fb model.Feedback) model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb.ID = uuid.NewString()
	fb.CandidateID = candidateID
	s.feedback[candidateID] = append(s.feedback[candidateID], fb)
	return fb
}

func (s *Store) AddCandidates(batch []model.BulkCandidate) (inserted, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	have := map[string]bool{}
	for _, c := range s.candidates {
		have[strings.ToLower(c.Email)] = true
	}
	for _, c := range batch {
		email := strings.ToLower(strings.TrimSpace(c.Email))
		if email == "" || have[email] {
			skipped++
			continue
		}
		have[email] = true
		s.candidates = append(s.candidates, model.CandidateSuggestion{
			ID:              uuid.NewString(),
			Name:            c.Name,
			Email:           c.Email,
			TechnicalSkills: c.TechnicalSkills,
			Location:        c.Location,
		})
		inserted++
	}
	return inserted, skipped
}

// PairingByConnectionID resolves a connection id, nil when unknown.
func (s *Store) PairingByConnectionID(id string) *Pairing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pairing != nil && s.pairing.ConnectionID == id {
		p := *s.pairing
		return &p
	}
	return nil
}

// Connect locks the pairing to a recruiter. Returns nil for an unknown id.
func (s *Store) Connect(connectionID string, recruiter *User) *Pairing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pairing == nil || s.pairing.ConnectionID != connectionID {
		return nil
	}
	s.pairing.Connected = true
	s.pairing.RecruiterID = recruiter.ID
	s.pairing.RecruiterName = recruiter.Name
	p := *s.pairing
	return &p
}

// Disconnect releases the pairing; reports whether it was connected.
func (s *Store) Disconnect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pairing == nil || !s.pairing.Connected {
		return false
	}
	s.pairing.Connected = false
	s.pairing.RecruiterID = ""
	s.pairing.RecruiterName = ""
	return true
}

func (s *Store) ConnectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pairing != nil && s.pairing.Connected {
		return 1
	}
	return 0
}

func (s *Store) Stats() model.ClientStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := 0
	for _, j := range s.jobs {
		if j.Active {
			active++
		}
	}
	return model.ClientStats{
		ActiveJobs:          active,
		TotalApplications:   len(s.candidates),
		InterviewsScheduled: len(s.interviews),
	}
}
