package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNewSubmissionHTML(t *testing.T) {
	html, err := RenderNewSubmissionHTML(NewSubmissionData{
		SubmissionID:    "64f0aa11bb22cc33dd44ee55",
		ServiceType:     "life-sciences",
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		Phone:           "555-0100",
		CompanyName:     "Acme",
		SourceLanguage:  "fr",
		TargetLanguages: []string{"en", "de"},
		Deadline:        "standard",
		FileCount:       2,
		ReviewLink:      "https://cethos.example/admin/submissions/64f0aa11bb22cc33dd44ee55",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "life-sciences")
	assert.Contains(t, html, "en, de")
	assert.Contains(t, html, "https://cethos.example/admin/submissions/64f0aa11bb22cc33dd44ee55")
}

func TestRenderQuoteHTML(t *testing.T) {
	t.Run("WithTurnaround", func(t *testing.T) {
		html, err := RenderQuoteHTML(QuoteEmailData{
			FullName:       "Jane Doe",
			ServiceType:    "academic-transcript",
			QuotedPrice:    65,
			Currency:       "CAD",
			TurnaroundDays: 2,
			QuoteLink:      "https://cethos.example/quote/abc",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "65.00 CAD")
		assert.Contains(t, html, "2 business day(s)")
		assert.Contains(t, html, "https://cethos.example/quote/abc")
	})

	t.Run("WithoutTurnaroundOmitsRow", func(t *testing.T) {
		html, err := RenderQuoteHTML(QuoteEmailData{
			FullName:    "Jane Doe",
			ServiceType: "academic-transcript",
			QuotedPrice: 65,
			Currency:    "CAD",
			QuoteLink:   "https://cethos.example/quote/abc",
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "business day")
	})
}

func TestRenderPaymentLinkHTML(t *testing.T) {
	html, err := RenderPaymentLinkHTML(PaymentLinkEmailData{
		FullName:    "Jane Doe",
		QuotedPrice: 129.5,
		Currency:    "USD",
		PaymentURL:  "https://pay.example.com/link/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "129.50 USD")
	assert.Contains(t, html, "https://pay.example.com/link/abc")
}
