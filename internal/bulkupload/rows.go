// Package bulkupload turns tabular candidate data into editable rows with
// the portal's fixed 10-column schema, validates them, and shapes the bulk
// upload payload. File extraction (CSV/XLSX/PDF) happens upstream; input
// here is already split into records.
package bulkupload

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// Columns is the fixed editable schema, in display order.
var Columns = []struct {
	Key      string
	Label    string
	Required bool
}{
	{Key: "name", Label: "Name", Required: true},
	{Key: "email", Label: "Email", Required: true},
	{Key: "cv_url", Label: "CV / Resume URL"},
	{Key: "phone", Label: "Phone"},
	{Key: "experience_years", Label: "Exp (years)"},
	{Key: "status", Label: "Status"},
	{Key: "location", Label: "Location"},
	{Key: "technical_skills", Label: "Skills"},
	{Key: "designation", Label: "Designation"},
	{Key: "education_level", Label: "Education"},
}

// headerAliases maps the header spellings seen in real uploads onto the
// canonical column keys.
var headerAliases = map[string]string{
	"name": "name", "full_name": "name", "candidate_name": "name",
	"email": "email", "e-mail": "email", "email_address": "email",
	"cv_url": "cv_url", "resume_url": "cv_url", "resume": "cv_url", "cv": "cv_url", "resume_path": "cv_url",
	"phone": "phone", "phone_number": "phone", "mobile": "phone", "contact": "phone",
	"experience_years": "experience_years", "experience": "experience_years",
	"years_of_experience": "experience_years", "exp": "experience_years",
	"status": "status", "application_status": "status",
	"location": "location", "city": "location", "address": "location",
	"skills": "technical_skills", "technical_skills": "technical_skills", "tech_skills": "technical_skills",
	"designation": "designation", "title": "designation", "seniority_level": "designation", "level": "designation",
	"education": "education_level", "education_level": "education_level", "qualification": "education_level",
}

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes an uploaded column header.
func NormalizeHeader(h string) string {
	s := spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "_")
	if canonical, ok := headerAliases[s]; ok {
		return canonical
	}
	return s
}

// Row is one editable candidate, keyed by canonical column key. Values stay
// strings until payload conversion so inline edits round-trip losslessly.
type Row map[string]string

// NewRow returns an empty row with the default status.
func NewRow() Row {
	row := Row{}
	for _, col := range Columns {
		row[col.Key] = ""
	}
	row["status"] = model.StatusApplied
	return row
}

// RowsFromRecords builds rows from pre-split records. When the first record
// looks like a header row its (aliased) names map columns; otherwise values
// are taken positionally in schema order.
func RowsFromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}

	headers, body := detectHeader(records)
	rows := make([]Row, 0, len(body))
	for _, rec := range body {
		row := NewRow()
		if headers != nil {
			for j, h := range headers {
				if j >= len(rec) {
					break
				}
				if _, known := row[h]; known {
					row[h] = strings.TrimSpace(rec[j])
				}
			}
		} else {
			for j, col := range Columns {
				if j >= len(rec) {
					break
				}
				row[col.Key] = strings.TrimSpace(rec[j])
			}
		}
		if row["status"] == "" {
			row["status"] = model.StatusApplied
		}
		rows = append(rows, row)
	}
	return rows
}

// detectHeader decides whether the first record names columns. A record
// where any cell aliases to a known column key is a header.
func detectHeader(records [][]string) ([]string, [][]string) {
	first := records[0]
	known := map[string]bool{}
	for _, col := range Columns {
		known[col.Key] = true
	}
	matched := 0
	normalized := make([]string, len(first))
	for i, h := range first {
		normalized[i] = NormalizeHeader(h)
		if known[normalized[i]] {
			matched++
		}
	}
	if matched > 0 {
		return normalized, records[1:]
	}
	return nil, records
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var phonePattern = regexp.MustCompile(`^[\d\s+\-().]{7,}$`)

// ValidateRow returns the row's errors; rowIndex is zero-based, messages
// are one-based for display.
func ValidateRow(row Row, rowIndex int) []string {
	var errs []string
	name := strings.TrimSpace(row["name"])
	email := strings.TrimSpace(row["email"])
	if name == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Name is required", rowIndex+1))
	}
	if email == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Email is required", rowIndex+1))
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid email format", rowIndex+1))
	}
	phone := strings.TrimSpace(row["phone"])
	if phone != "" && !phonePattern.MatchString(phone) {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid phone format", rowIndex+1))
	}
	exp := strings.TrimSpace(row["experience_years"])
	if exp != "" {
		if n, err := strconv.ParseFloat(exp, 64); err != nil || n < 0 {
			errs = append(errs, fmt.Sprintf("Row %d: Experience years must be a non-negative number", rowIndex+1))
		}
	}
	return errs
}

// ValidateAll validates every row that has at least its required fields;
// rows missing both name and email are treated as blanks and skipped.
func ValidateAll(rows []Row) []string {
	var all []string
	for i, row := range rows {
		blank := strings.TrimSpace(row["name"]) == "" && strings.TrimSpace(row["email"]) == ""
		if blank {
			continue
		}
		all = append(all, ValidateRow(row, i)...)
	}
	return all
}

// Payload converts validated rows into the bulk upload request. Rows
// missing required fields are dropped, matching ValidateAll's skip rule.
func Payload(rows []Row) model.BulkUploadReq {
	candidates := make([]model.BulkCandidate, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row["name"])
		email := strings.TrimSpace(row["email"])
		if name == "" || email == "" {
			continue
		}
		years := 0
		if exp := strings.TrimSpace(row["experience_years"]); exp != "" {
			if n, err := strconv.Atoi(exp); err == nil && n > 0 {
				years = n
			}
		}
		status := strings.TrimSpace(row["status"])
		if status == "" {
			status = model.StatusApplied
		}
		candidates = append(candidates, model.BulkCandidate{
			Name:            name,
			Email:           email,
			CVURL:           strings.TrimSpace(row["cv_url"]),
			Phone:           strings.TrimSpace(row["phone"]),
			ExperienceYears: years,
			Status:          status,
			Location:        strings.TrimSpace(row["location"]),
			TechnicalSkills: strings.TrimSpace(row["technical_skills"]),
			Designation:     strings.TrimSpace(row["designation"]),
			EducationLevel:  strings.TrimSpace(row["education_level"]),
		})
	}
	return model.BulkUploadReq{Candidates: candidates}
}
