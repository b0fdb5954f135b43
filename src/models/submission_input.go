package models

import (
	"encoding/json"
	"time"
)

// SubmissionInput is the wire shape of a quote request, shared by the JSON
// and multipart intake paths and by the step-form wizard.
type SubmissionInput struct {
	ServiceType string `json:"serviceType" validate:"required"`

	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	JobTitle    string `json:"jobTitle"`

	SourceLanguage  string   `json:"sourceLanguage" validate:"required"`
	TargetLanguages []string `json:"targetLanguages" validate:"required,min=1,dive,required"`

	WordCount *int   `json:"wordCount" validate:"omitempty,gte=0"`
	Deadline  string `json:"deadline" validate:"required"`
	Notes     string `json:"notes"`

	ServiceData json.RawMessage `json:"serviceData"`
}

// ToSubmission builds a pending Submission from validated input. Service data
// must already have been parsed; pass nil when the service has none.
func (in *SubmissionInput) ToSubmission(sd *ServiceData) *Submission {
	return &Submission{
		ServiceType:     ServiceType(in.ServiceType),
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		CompanyName:     in.CompanyName,
		JobTitle:        in.JobTitle,
		SourceLanguage:  in.SourceLanguage,
		TargetLanguages: in.TargetLanguages,
		WordCount:       in.WordCount,
		Deadline:        in.Deadline,
		Notes:           in.Notes,
		ServiceData:     sd,
		FileURLs:        []string{},
		Status:          StatusPending,
		CreatedAt:       time.Now(),
	}
}
