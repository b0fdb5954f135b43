package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceData is the service-specific portion of a quote request. Exactly one
// variant is populated, matching the Kind tag. The marketing forms used to
// post these fields as a loose bag; parsing them into a tagged variant up
// front means malformed service data is rejected at intake instead of being
// stored silently.
type ServiceData struct {
	Kind ServiceType `bson:"kind" json:"kind"`

	LifeSciences        *LifeSciencesData        `bson:"lifeSciences,omitempty" json:"lifeSciences,omitempty"`
	Transcription       *TranscriptionData       `bson:"transcription,omitempty" json:"transcription,omitempty"`
	WebsiteLocalization *WebsiteLocalizationData `bson:"websiteLocalization,omitempty" json:"websiteLocalization,omitempty"`
	ClinicianReview     *ClinicianReviewData     `bson:"clinicianReview,omitempty" json:"clinicianReview,omitempty"`
	AcademicTranscript  *AcademicTranscriptData  `bson:"academicTranscript,omitempty" json:"academicTranscript,omitempty"`
	CertifiedDocument   *CertifiedDocumentData   `bson:"certifiedDocument,omitempty" json:"certifiedDocument,omitempty"`
}

type LifeSciencesData struct {
	TherapeuticArea string `bson:"therapeuticArea" json:"therapeuticArea"`
	StudyPhase      string `bson:"studyPhase,omitempty" json:"studyPhase,omitempty"`
}

// TranscriptionStyle values accepted on transcription requests.
const (
	TranscriptionVerbatim = "verbatim"
	TranscriptionClean    = "clean"
	TranscriptionLegal    = "legal"
)

type TranscriptionData struct {
	Style        string `bson:"style" json:"style"`
	AudioMinutes int    `bson:"audioMinutes" json:"audioMinutes"`
	// LegalSubType is required when Style is "legal" (deposition, hearing, ...).
	LegalSubType string `bson:"legalSubType,omitempty" json:"legalSubType,omitempty"`
}

type WebsiteLocalizationData struct {
	SiteURL   string `bson:"siteUrl" json:"siteUrl"`
	PageCount int    `bson:"pageCount,omitempty" json:"pageCount,omitempty"`
}

type ClinicianReviewData struct {
	TherapeuticArea   string `bson:"therapeuticArea" json:"therapeuticArea"`
	ReviewerSpecialty string `bson:"reviewerSpecialty,omitempty" json:"reviewerSpecialty,omitempty"`
}

type AcademicTranscriptData struct {
	Institution   string `bson:"institution,omitempty" json:"institution,omitempty"`
	CertifiedCopy bool   `bson:"certifiedCopy,omitempty" json:"certifiedCopy,omitempty"`
}

type CertifiedDocumentData struct {
	DocumentType   string `bson:"documentType" json:"documentType"`
	CountryOfIssue string `bson:"countryOfIssue,omitempty" json:"countryOfIssue,omitempty"`
}

// serviceDataRequired marks the services whose requests make no sense without
// their service-specific fields.
var serviceDataRequired = map[ServiceType]bool{
	ServiceTranscription:       true,
	ServiceWebsiteLocalization: true,
	ServiceCertifiedDocument:   true,
}

// ParseServiceData decodes and validates the raw serviceData payload for the
// given service type. It returns per-field errors keyed the same way the
// client sent them, so the 400 body can echo them back.
func ParseServiceData(serviceType ServiceType, raw json.RawMessage) (*ServiceData, map[string]string) {
	fieldErrs := map[string]string{}

	if !IsKnownServiceType(serviceType) {
		fieldErrs["serviceType"] = fmt.Sprintf("unknown service type %q", serviceType)
		return nil, fieldErrs
	}

	if len(raw) == 0 || string(raw) == "null" || string(raw) == "{}" {
		if serviceDataRequired[serviceType] {
			fieldErrs["serviceData"] = fmt.Sprintf("service details are required for %s requests", serviceType)
			return nil, fieldErrs
		}
		return nil, nil
	}

	sd := &ServiceData{Kind: serviceType}

	switch serviceType {
	case ServiceLifeSciences:
		var d LifeSciencesData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		if strings.TrimSpace(d.TherapeuticArea) == "" {
			fieldErrs["serviceData.therapeuticArea"] = "therapeutic area is required"
		}
		sd.LifeSciences = &d

	case ServiceTranscription:
		var d TranscriptionData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		switch d.Style {
		case TranscriptionVerbatim, TranscriptionClean:
		case TranscriptionLegal:
			if strings.TrimSpace(d.LegalSubType) == "" {
				fieldErrs["serviceData.legalSubType"] = "legal transcription requires a sub-type"
			}
		default:
			fieldErrs["serviceData.style"] = "style must be one of verbatim, clean, legal"
		}
		if d.AudioMinutes < 0 {
			fieldErrs["serviceData.audioMinutes"] = "audio duration must be zero or more minutes"
		}
		sd.Transcription = &d

	case ServiceWebsiteLocalization:
		var d WebsiteLocalizationData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		if strings.TrimSpace(d.SiteURL) == "" {
			fieldErrs["serviceData.siteUrl"] = "site URL is required"
		}
		if d.PageCount < 0 {
			fieldErrs["serviceData.pageCount"] = "page count must be zero or more"
		}
		sd.WebsiteLocalization = &d

	case ServiceClinicianReview:
		var d ClinicianReviewData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		if strings.TrimSpace(d.TherapeuticArea) == "" {
			fieldErrs["serviceData.therapeuticArea"] = "therapeutic area is required"
		}
		sd.ClinicianReview = &d

	case ServiceAcademicTranscript:
		var d AcademicTranscriptData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		sd.AcademicTranscript = &d

	case ServiceCertifiedDocument:
		var d CertifiedDocumentData
		if err := json.Unmarshal(raw, &d); err != nil {
			fieldErrs["serviceData"] = "malformed service data: " + err.Error()
			return nil, fieldErrs
		}
		if strings.TrimSpace(d.DocumentType) == "" {
			fieldErrs["serviceData.documentType"] = "document type is required"
		}
		sd.CertifiedDocument = &d
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return sd, nil
}
