package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

// Step names one screen of the quote form.
type Step string

const (
	StepDetails   Step = "details"
	StepLanguages Step = "languages"
	StepContact   Step = "contact"
	StepReview    Step = "review"
)

var stepOrder = []Step{StepDetails, StepLanguages, StepContact, StepReview}

// DetailsData is the first screen: what the customer needs done.
type DetailsData struct {
	ServiceType string          `json:"serviceType" validate:"required"`
	Deadline    string          `json:"deadline" validate:"required"`
	WordCount   *int            `json:"wordCount" validate:"omitempty,gte=0"`
	Notes       string          `json:"notes"`
	ServiceData json.RawMessage `json:"serviceData"`
}

// LanguagesData is the second screen.
type LanguagesData struct {
	SourceLanguage  string   `json:"sourceLanguage" validate:"required"`
	TargetLanguages []string `json:"targetLanguages" validate:"required,min=1,dive,required"`
}

// ContactData is the third screen.
type ContactData struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	JobTitle    string `json:"jobTitle"`
}

// Form is the state of one in-flight quote form. Forward navigation is
// blocked until the current step validates; going back is always allowed and
// never loses entered data; only the review step can submit.
type Form struct {
	ID       string `json:"id"`
	Location string `json:"location"` // which page hosted the form, for analytics

	Step      Step          `json:"step"`
	Details   DetailsData   `json:"details"`
	Languages LanguagesData `json:"languages"`
	Contact   ContactData   `json:"contact"`

	// SubmittedID is set once the final submit succeeded.
	SubmittedID string `json:"submittedId,omitempty"`
}

func New(location string) *Form {
	return &Form{
		ID:       uuid.NewString(),
		Location: location,
		Step:     StepDetails,
	}
}

// UpdateCurrent merges raw data into the current step. Invalid values are
// accepted here; they only block Next and Submit, never data entry.
func (f *Form) UpdateCurrent(raw json.RawMessage) error {
	switch f.Step {
	case StepDetails:
		return json.Unmarshal(raw, &f.Details)
	case StepLanguages:
		return json.Unmarshal(raw, &f.Languages)
	case StepContact:
		return json.Unmarshal(raw, &f.Contact)
	case StepReview:
		return errors.New("the review step has no fields to update")
	}
	return fmt.Errorf("unknown step %q", f.Step)
}

// ValidateStep returns per-field errors for one step, empty when it passes.
func (f *Form) ValidateStep(step Step) map[string]string {
	switch step {
	case StepDetails:
		fieldErrs := utils.ValidateStruct(f.Details)
		if f.Details.ServiceType != "" {
			if _, sdErrs := models.ParseServiceData(models.ServiceType(f.Details.ServiceType), f.Details.ServiceData); sdErrs != nil {
				for k, v := range sdErrs {
					fieldErrs[k] = v
				}
			}
		}
		return fieldErrs
	case StepLanguages:
		return utils.ValidateStruct(f.Languages)
	case StepContact:
		return utils.ValidateStruct(f.Contact)
	default:
		return map[string]string{}
	}
}

// Next advances to the following step if the current one validates. It
// returns the field errors that blocked it, if any.
func (f *Form) Next() map[string]string {
	if f.Step == StepReview {
		return map[string]string{}
	}
	if fieldErrs := f.ValidateStep(f.Step); len(fieldErrs) > 0 {
		return fieldErrs
	}
	for i, s := range stepOrder {
		if s == f.Step {
			f.Step = stepOrder[i+1]
			break
		}
	}
	return map[string]string{}
}

// Back moves one step towards the start. Entered data stays put.
func (f *Form) Back() {
	for i, s := range stepOrder {
		if s == f.Step && i > 0 {
			f.Step = stepOrder[i-1]
			return
		}
	}
}

// Submitter persists an assembled submission. The submission service
// satisfies it.
type Submitter interface {
	Create(ctx context.Context, sub *models.Submission) (*models.Submission, error)
}

// TrackFunc records one analytics event. It runs fire-and-forget: submission
// success never waits on it or fails because of it.
type TrackFunc func(event, serviceType, location string)

// ErrNotAtReview means submit was attempted before the final step.
var ErrNotAtReview = errors.New("submit is only allowed from the review step")

// Submit assembles the full request and hands it to the submitter. On failure
// the form keeps its data so the customer can retry as-is; on success the
// analytics event fires in the background and the new identifier is recorded.
func (f *Form) Submit(ctx context.Context, submitter Submitter, track TrackFunc) (string, map[string]string, error) {
	if f.Step != StepReview {
		return "", nil, ErrNotAtReview
	}

	// Re-validate every step; earlier steps may have been edited via Back.
	fieldErrs := map[string]string{}
	for _, step := range stepOrder[:len(stepOrder)-1] {
		for k, v := range f.ValidateStep(step) {
			fieldErrs[k] = v
		}
	}
	if len(fieldErrs) > 0 {
		return "", fieldErrs, nil
	}

	sd, _ := models.ParseServiceData(models.ServiceType(f.Details.ServiceType), f.Details.ServiceData)
	in := models.SubmissionInput{
		ServiceType:     f.Details.ServiceType,
		FullName:        f.Contact.FullName,
		Email:           f.Contact.Email,
		Phone:           f.Contact.Phone,
		CompanyName:     f.Contact.CompanyName,
		JobTitle:        f.Contact.JobTitle,
		SourceLanguage:  f.Languages.SourceLanguage,
		TargetLanguages: f.Languages.TargetLanguages,
		WordCount:       f.Details.WordCount,
		Deadline:        f.Details.Deadline,
		Notes:           f.Details.Notes,
	}

	created, err := submitter.Create(ctx, in.ToSubmission(sd))
	if err != nil {
		return "", nil, err
	}

	f.SubmittedID = created.ID.Hex()
	if track != nil {
		go track("quote_submitted", f.Details.ServiceType, f.Location)
	}
	return f.SubmittedID, nil, nil
}
