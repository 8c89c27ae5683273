package bulkupload

import (
	"strings"
	"testing"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"Candidate Name", "name"},
		{"E-Mail", "email"},
		{"Resume URL", "cv_url"},
		{"Years of Experience", "experience_years"},
		{"  Phone Number  ", "phone"},
		{"Tech Skills", "technical_skills"},
		{"Qualification", "education_level"},
		{"Seniority Level", "designation"},
		{"Something Else", "something_else"},
	}
	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Errorf("NormalizeHeader(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRowsFromRecordsWithHeader(t *testing.T) {
	t.Parallel()
	records := [][]string{
		{"Full Name", "Email Address", "Mobile", "Experience"},
		{" Asha Rao ", "asha@example.com", "+91 9876543210", "4"},
		{"Vikram Shah", "vikram@example.com", "", ""},
	}
	rows := RowsFromRecords(records)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["name"] != "Asha Rao" {
		t.Errorf("name not trimmed: got %q", rows[0]["name"])
	}
	if rows[0]["phone"] != "+91 9876543210" {
		t.Errorf("phone: got %q", rows[0]["phone"])
	}
	if rows[0]["experience_years"] != "4" {
		t.Errorf("experience: got %q", rows[0]["experience_years"])
	}
	if rows[1]["status"] != model.StatusApplied {
		t.Errorf("default status: got %q, want %q", rows[1]["status"], model.StatusApplied)
	}
}

func TestRowsFromRecordsPositional(t *testing.T) {
	t.Parallel()
	records := [][]string{
		{"Asha Rao", "asha@example.com", "https://cv.example.com/asha.pdf", "9876543210", "4"},
	}
	rows := RowsFromRecords(records)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row["name"] != "Asha Rao" || row["email"] != "asha@example.com" {
		t.Errorf("row: got %+v", row)
	}
	if row["cv_url"] != "https://cv.example.com/asha.pdf" {
		t.Errorf("cv_url: got %q", row["cv_url"])
	}
	if row["experience_years"] != "4" {
		t.Errorf("experience: got %q", row["experience_years"])
	}
}

func TestRowsFromRecordsEmpty(t *testing.T) {
	t.Parallel()
	if rows := RowsFromRecords(nil); rows != nil {
		t.Errorf("got %v, want nil", rows)
	}
}

func TestNewRowDefaults(t *testing.T) {
	t.Parallel()
	row := NewRow()
	if len(row) != len(Columns) {
		t.Fatalf("got %d keys, want %d", len(row), len(Columns))
	}
	if row["status"] != model.StatusApplied {
		t.Errorf("default status: got %q", row["status"])
	}
}

func TestValidateRow(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		row     Row
		wantErr string
	}{
		{
			name: "valid",
			row:  Row{"name": "Asha", "email": "asha@example.com", "phone": "9876543210", "experience_years": "3"},
		},
		{
			name:    "missing name",
			row:     Row{"email": "asha@example.com"},
			wantErr: "Row 1: Name is required",
		},
		{
			name:    "missing email",
			row:     Row{"name": "Asha"},
			wantErr: "Row 1: Email is required",
		},
		{
			name:    "bad email",
			row:     Row{"name": "Asha", "email": "not-an-email"},
			wantErr: "Row 1: Invalid email format",
		},
		{
			name:    "bad phone",
			row:     Row{"name": "Asha", "email": "asha@example.com", "phone": "abc"},
			wantErr: "Row 1: Invalid phone format",
		},
		{
			name:    "negative experience",
			row:     Row{"name": "Asha", "email": "asha@example.com", "experience_years": "-2"},
			wantErr: "Row 1: Experience years must be a non-negative number",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errs := ValidateRow(tc.row, 0)
			if tc.wantErr == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			for _, e := range errs {
				if e == tc.wantErr {
					return
				}
			}
			t.Errorf("errors %v missing %q", errs, tc.wantErr)
		})
	}
}

func TestValidateAllSkipsBlankRowsOnly(t *testing.T) {
	t.Parallel()
	rows := []Row{
		{"name": "Asha", "email": "asha@example.com"},
		{"name": "", "email": ""}, // blank filler row, skipped
		{"name": "Vikram", "email": ""},
	}
	errs := ValidateAll(rows)
	if len(errs) != 1 {
		t.Fatalf("got %v, want exactly one error", errs)
	}
	if !strings.Contains(errs[0], "Row 3: Email is required") {
		t.Errorf("error: got %q, want row 3 email error", errs[0])
	}
}

func TestPayload(t *testing.T) {
	t.Parallel()
	rows := []Row{
		{
			"name":             "  Asha Rao ",
			"email":            "asha@example.com",
			"phone":            "9876543210",
			"experience_years": "4",
			"technical_skills": "Go, SQL",
		},
		{"name": "", "email": ""}, // dropped
		{"name": "Vikram Shah", "email": "vikram@example.com", "status": "screening"},
	}
	req := Payload(rows)
	if len(req.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(req.Candidates))
	}
	first := req.Candidates[0]
	if first.Name != "Asha Rao" || first.ExperienceYears != 4 {
		t.Errorf("first candidate: got %+v", first)
	}
	if first.Status != model.StatusApplied {
		t.Errorf("default status: got %q", first.Status)
	}
	if req.Candidates[1].Status != "screening" {
		t.Errorf("explicit status: got %q", req.Candidates[1].Status)
	}
}
