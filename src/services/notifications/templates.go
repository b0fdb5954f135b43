package notifications

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

// NewSubmissionData feeds the internal alert sent to the team when a request
// comes in from any of the quote forms.
type NewSubmissionData struct {
	SubmissionID    string
	ServiceType     string
	FullName        string
	Email           string
	Phone           string
	CompanyName     string
	SourceLanguage  string
	TargetLanguages []string
	Deadline        string
	FileCount       int
	ReviewLink      string
}

// QuoteEmailData feeds the customer-facing quote notice.
type QuoteEmailData struct {
	FullName       string
	ServiceType    string
	QuotedPrice    float64
	Currency       string
	TurnaroundDays int
	QuoteLink      string
}

// PaymentLinkEmailData feeds the customer-facing payment request.
type PaymentLinkEmailData struct {
	FullName    string
	QuotedPrice float64
	Currency    string
	PaymentURL  string
}

//go:embed templates/new_submission.html
var newSubmissionHTML string

//go:embed templates/quote.html
var quoteHTML string

//go:embed templates/payment_link.html
var paymentLinkHTML string

var tmplFuncs = template.FuncMap{
	"money": func(amount float64, currency string) string {
		return fmt.Sprintf("%.2f %s", amount, currency)
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
}

var (
	newSubmissionTmpl = template.Must(template.New("new_submission").Funcs(tmplFuncs).Parse(newSubmissionHTML))
	quoteTmpl         = template.Must(template.New("quote").Funcs(tmplFuncs).Parse(quoteHTML))
	paymentLinkTmpl   = template.Must(template.New("payment_link").Funcs(tmplFuncs).Parse(paymentLinkHTML))
)

func RenderNewSubmissionHTML(data NewSubmissionData) (string, error) {
	var buf bytes.Buffer
	if err := newSubmissionTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderQuoteHTML(data QuoteEmailData) (string, error) {
	var buf bytes.Buffer
	if err := quoteTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderPaymentLinkHTML(data PaymentLinkEmailData) (string, error) {
	var buf bytes.Buffer
	if err := paymentLinkTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
