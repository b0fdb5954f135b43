package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceType identifies which business offering a quote request concerns.
type ServiceType string

const (
	ServiceLifeSciences        ServiceType = "life-sciences"
	ServiceTranscription       ServiceType = "transcription"
	ServiceWebsiteLocalization ServiceType = "website-localization"
	ServiceClinicianReview     ServiceType = "clinician-review"
	ServiceAcademicTranscript  ServiceType = "academic-transcript"
	ServiceCertifiedDocument   ServiceType = "certified-document"
)

// KnownServiceTypes lists every service the intake forms can submit for.
var KnownServiceTypes = []ServiceType{
	ServiceLifeSciences,
	ServiceTranscription,
	ServiceWebsiteLocalization,
	ServiceClinicianReview,
	ServiceAcademicTranscript,
	ServiceCertifiedDocument,
}

// IsKnownServiceType reports whether s is one of the service tags the site offers.
func IsKnownServiceType(s ServiceType) bool {
	for _, t := range KnownServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// SupportedCurrencies are the only currencies staff may quote in.
var SupportedCurrencies = []string{"CAD", "USD", "EUR"}

func IsSupportedCurrency(c string) bool {
	for _, cur := range SupportedCurrencies {
		if c == cur {
			return true
		}
	}
	return false
}

// Submission is one customer request for a price quote. It is created by the
// public intake endpoint and afterwards only touched by the review console.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceType ServiceType        `bson:"serviceType" json:"serviceType"`

	// Contact
	FullName    string `bson:"fullName" json:"fullName"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	CompanyName string `bson:"companyName" json:"companyName"`
	JobTitle    string `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`

	// Language pair
	SourceLanguage  string   `bson:"sourceLanguage" json:"sourceLanguage"`
	TargetLanguages []string `bson:"targetLanguages" json:"targetLanguages"`

	// Scope
	WordCount   *int         `bson:"wordCount,omitempty" json:"wordCount,omitempty"`
	Deadline    string       `bson:"deadline" json:"deadline"`
	Notes       string       `bson:"notes,omitempty" json:"notes,omitempty"`
	ServiceData *ServiceData `bson:"serviceData,omitempty" json:"serviceData,omitempty"`
	FileURLs    []string     `bson:"fileUrls" json:"fileUrls"`

	Status Status `bson:"status" json:"status"`

	// Pricing, set only by staff. Nil until a quote is prepared.
	QuotedPrice    *float64 `bson:"quotedPrice,omitempty" json:"quotedPrice,omitempty"`
	Currency       string   `bson:"currency,omitempty" json:"currency,omitempty"`
	TurnaroundDays *int     `bson:"turnaroundDays,omitempty" json:"turnaroundDays,omitempty"`
	InternalNotes  string   `bson:"internalNotes,omitempty" json:"internalNotes,omitempty"`

	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	QuoteSentAt       *time.Time `bson:"quoteSentAt,omitempty" json:"quoteSentAt,omitempty"`
	PaymentLinkSentAt *time.Time `bson:"paymentLinkSentAt,omitempty" json:"paymentLinkSentAt,omitempty"`
}

// PricingUpdate carries the staff-editable pricing fields of a PATCH.
// Nil pointers mean "leave unchanged".
type PricingUpdate struct {
	QuotedPrice    *float64 `json:"quotedPrice,omitempty" validate:"omitempty,gte=0"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,oneof=CAD USD EUR"`
	TurnaroundDays *int     `json:"turnaroundDays,omitempty" validate:"omitempty,gt=0"`
	InternalNotes  *string  `json:"internalNotes,omitempty"`
}

// Empty reports whether the update would touch nothing.
func (p PricingUpdate) Empty() bool {
	return p.QuotedPrice == nil && p.Currency == nil && p.TurnaroundDays == nil && p.InternalNotes == nil
}
