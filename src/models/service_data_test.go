package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceData(t *testing.T) {
	t.Run("UnknownServiceType", func(t *testing.T) {
		sd, errs := ParseServiceData("telepathy", nil)
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceType")
	})

	t.Run("OptionalForAcademicTranscript", func(t *testing.T) {
		sd, errs := ParseServiceData(ServiceAcademicTranscript, nil)
		assert.Nil(t, sd)
		assert.Empty(t, errs)
	})

	t.Run("RequiredForTranscription", func(t *testing.T) {
		sd, errs := ParseServiceData(ServiceTranscription, nil)
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData")
	})

	t.Run("ValidTranscription", func(t *testing.T) {
		raw := json.RawMessage(`{"style":"clean","audioMinutes":90}`)
		sd, errs := ParseServiceData(ServiceTranscription, raw)
		require.Empty(t, errs)
		require.NotNil(t, sd)
		assert.Equal(t, ServiceTranscription, sd.Kind)
		require.NotNil(t, sd.Transcription)
		assert.Equal(t, "clean", sd.Transcription.Style)
		assert.Equal(t, 90, sd.Transcription.AudioMinutes)
	})

	t.Run("LegalTranscriptionNeedsSubType", func(t *testing.T) {
		raw := json.RawMessage(`{"style":"legal","audioMinutes":30}`)
		sd, errs := ParseServiceData(ServiceTranscription, raw)
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData.legalSubType")

		raw = json.RawMessage(`{"style":"legal","audioMinutes":30,"legalSubType":"deposition"}`)
		sd, errs = ParseServiceData(ServiceTranscription, raw)
		assert.Empty(t, errs)
		require.NotNil(t, sd)
		assert.Equal(t, "deposition", sd.Transcription.LegalSubType)
	})

	t.Run("NegativeAudioMinutesRejected", func(t *testing.T) {
		raw := json.RawMessage(`{"style":"verbatim","audioMinutes":-5}`)
		sd, errs := ParseServiceData(ServiceTranscription, raw)
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData.audioMinutes")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		raw := json.RawMessage(`{"style":`)
		sd, errs := ParseServiceData(ServiceTranscription, raw)
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData")
	})

	t.Run("LifeSciencesNeedsTherapeuticArea", func(t *testing.T) {
		sd, errs := ParseServiceData(ServiceLifeSciences, json.RawMessage(`{"studyPhase":"III"}`))
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData.therapeuticArea")

		sd, errs = ParseServiceData(ServiceLifeSciences, json.RawMessage(`{"therapeuticArea":"oncology","studyPhase":"III"}`))
		assert.Empty(t, errs)
		require.NotNil(t, sd)
		assert.Equal(t, "oncology", sd.LifeSciences.TherapeuticArea)
	})

	t.Run("WebsiteLocalizationNeedsURL", func(t *testing.T) {
		sd, errs := ParseServiceData(ServiceWebsiteLocalization, json.RawMessage(`{"pageCount":12}`))
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData.siteUrl")
	})

	t.Run("CertifiedDocumentNeedsType", func(t *testing.T) {
		sd, errs := ParseServiceData(ServiceCertifiedDocument, json.RawMessage(`{"countryOfIssue":"FR"}`))
		assert.Nil(t, sd)
		assert.Contains(t, errs, "serviceData.documentType")
	})
}

func TestSubmissionInputToSubmission(t *testing.T) {
	wc := 1200
	in := SubmissionInput{
		ServiceType:     string(ServiceLifeSciences),
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		Phone:           "555-0100",
		CompanyName:     "Acme",
		SourceLanguage:  "fr",
		TargetLanguages: []string{"en", "de"},
		WordCount:       &wc,
		Deadline:        "standard",
	}

	sub := in.ToSubmission(nil)
	assert.Equal(t, StatusPending, sub.Status)
	assert.Nil(t, sub.QuotedPrice)
	assert.Nil(t, sub.TurnaroundDays)
	assert.Nil(t, sub.QuoteSentAt)
	assert.Nil(t, sub.PaymentLinkSentAt)
	assert.NotNil(t, sub.FileURLs)
	assert.Empty(t, sub.FileURLs)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.Equal(t, []string{"en", "de"}, sub.TargetLanguages)
}
