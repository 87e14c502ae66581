//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedJobsLimit is the number of jobs returned by the featured listing.
const FeaturedJobsLimit = 6

// ApplicantInfo is an applicant record embedded in a Job's
// appliedPersonInformation array. Jobs are queryable by the embedded email.
type ApplicantInfo struct {
	FullName    string    `json:"fullName,omitempty"    bson:"fullName,omitempty"`
	Email       string    `json:"email"                 bson:"email"`
	Phone       string    `json:"phone,omitempty"       bson:"phone,omitempty"`
	Resume      string    `json:"resume,omitempty"      bson:"resume,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty" bson:"coverLetter,omitempty"`
	AppliedAt   time.Time `json:"appliedAt,omitempty"   bson:"appliedAt,omitempty"`
}

// Job represents a job posting.
//
// The schema is deliberately open: clients post arbitrary shapes and the
// fields below are the ones the API reads back. Anything else lands in
// Extra and round-trips through the store untouched.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Company     string             `bson:"company,omitempty"`
	Position    string             `bson:"position,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Logo        string             `bson:"logo,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Salary      string             `bson:"salary,omitempty"`
	Description string             `bson:"description,omitempty"`
	PostedTime  time.Time          `bson:"postedTime"`
	Applicants  []ApplicantInfo    `bson:"appliedPersonInformation,omitempty"`
	Extra       map[string]any     `bson:",inline"`
}

// jobKnownKeys lists the JSON keys handled by the typed Job fields.
// Everything else is preserved in Extra.
var jobKnownKeys = map[string]struct{}{
	"_id":                      {},
	"company":                  {},
	"position":                 {},
	"category":                 {},
	"logo":                     {},
	"location":                 {},
	"salary":                   {},
	"description":              {},
	"postedTime":               {},
	"appliedPersonInformation": {},
}

// jobJSON mirrors Job for (un)marshaling the typed fields.
type jobJSON struct {
	ID          string          `json:"_id,omitempty"`
	Company     string          `json:"company,omitempty"`
	Position    string          `json:"position,omitempty"`
	Category    string          `json:"category,omitempty"`
	Logo        string          `json:"logo,omitempty"`
	Location    string          `json:"location,omitempty"`
	Salary      string          `json:"salary,omitempty"`
	Description string          `json:"description,omitempty"`
	PostedTime  time.Time       `json:"postedTime"`
	Applicants  []ApplicantInfo `json:"appliedPersonInformation,omitempty"`
}

// MarshalJSON emits the typed fields merged with the open Extra fields.
func (j Job) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(j.Extra)+10)
	for k, v := range j.Extra {
		out[k] = v
	}

	typed := jobJSON{
		Company:     j.Company,
		Position:    j.Position,
		Category:    j.Category,
		Logo:        j.Logo,
		Location:    j.Location,
		Salary:      j.Salary,
		Description: j.Description,
		PostedTime:  j.PostedTime,
		Applicants:  j.Applicants,
	}
	if !j.ID.IsZero() {
		typed.ID = j.ID.Hex()
	}

	b, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	var typedMap map[string]any
	if err := json.Unmarshal(b, &typedMap); err != nil {
		return nil, err
	}
	for k, v := range typedMap {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON fills the typed fields and keeps unrecognized keys in Extra.
func (j *Job) UnmarshalJSON(data []byte) error {
	var typed jobJSON
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if typed.ID != "" {
		id, err := primitive.ObjectIDFromHex(typed.ID)
		if err == nil {
			j.ID = id
		}
	}
	j.Company = typed.Company
	j.Position = typed.Position
	j.Category = typed.Category
	j.Logo = typed.Logo
	j.Location = typed.Location
	j.Salary = typed.Salary
	j.Description = typed.Description
	j.PostedTime = typed.PostedTime
	j.Applicants = typed.Applicants

	j.Extra = nil
	for k, v := range raw {
		if _, known := jobKnownKeys[k]; known {
			continue
		}
		if j.Extra == nil {
			j.Extra = make(map[string]any)
		}
		j.Extra[k] = v
	}
	return nil
}

// PageInfo summarizes a pagination window.
type PageInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalJobs   int64 `json:"totalJobs"`
}

// JobPage is a windowed job listing with its pagination summary.
type JobPage struct {
	Jobs       []*Job   `json:"jobs"`
	Pagination PageInfo `json:"pagination"`
}

// NewPageInfo computes the pagination summary for a window.
// totalPages is ceil(totalCount/limit).
func NewPageInfo(page, limit int, totalCount int64) PageInfo {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalJobs:   totalCount,
	}
}
