package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/notifications"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/payments"
)

var (
	// ErrNoQuotedPrice blocks any send action until staff priced the request.
	ErrNoQuotedPrice = errors.New("a quoted price must be set before sending")
	// ErrLocked means the record reached a state where send actions are disabled.
	ErrLocked = errors.New("submission is closed; send actions are disabled")
)

// SubmissionStore is the slice of the submission service the console needs.
type SubmissionStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	UpdatePricing(ctx context.Context, id primitive.ObjectID, p models.PricingUpdate) error
	Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.Submission, error)
	MarkQuoteSent(ctx context.Context, id primitive.ObjectID, at time.Time) error
	MarkPaymentLinkSent(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// Service drives the staff-side workflow: pricing, quote emails, payment
// links, rejection and escalation. The multi-step send operations persist
// pricing first and do not roll it back if a later step fails; that partial
// state is deliberate and visible to staff, who can retry just the send.
type Service struct {
	subs          SubmissionStore
	mailer        notifications.Mailer
	payments      payments.PaymentLinker
	publicBaseURL string
}

func NewService(subs SubmissionStore, mailer notifications.Mailer, linker payments.PaymentLinker, publicBaseURL string) *Service {
	return &Service{subs: subs, mailer: mailer, payments: linker, publicBaseURL: publicBaseURL}
}

// QuotePageLink is the customer-facing review/payment page for a submission.
func (s *Service) QuotePageLink(id primitive.ObjectID) string {
	return s.publicBaseURL + "/quote/" + id.Hex()
}

// SavePricing writes pricing fields regardless of status, so staff can fix a
// number even after the quote already went out.
func (s *Service) SavePricing(ctx context.Context, id primitive.ObjectID, p models.PricingUpdate) (*models.Submission, error) {
	if err := s.subs.UpdatePricing(ctx, id, p); err != nil {
		return nil, err
	}
	return s.subs.GetByID(ctx, id)
}

// SendQuote emails the customer their quote. Pricing in the request, if any,
// is persisted before anything else. On success the record moves to
// awaiting_payment and quoteSentAt records this (latest) send.
func (s *Service) SendQuote(ctx context.Context, id primitive.ObjectID, pricing *models.PricingUpdate) (*models.Submission, error) {
	sub, err := s.prepareSend(ctx, id, pricing)
	if err != nil {
		return nil, err
	}

	html, err := notifications.RenderQuoteHTML(notifications.QuoteEmailData{
		FullName:       sub.FullName,
		ServiceType:    string(sub.ServiceType),
		QuotedPrice:    *sub.QuotedPrice,
		Currency:       currencyOrDefault(sub.Currency),
		TurnaroundDays: derefInt(sub.TurnaroundDays),
		QuoteLink:      s.QuotePageLink(sub.ID),
	})
	if err != nil {
		return nil, err
	}
	if err := s.mailer.Send([]string{sub.Email}, "Your Cethos translation quote", html, ""); err != nil {
		return nil, fmt.Errorf("quote email failed (pricing was saved): %w", err)
	}

	now := time.Now()
	if err := s.subs.MarkQuoteSent(ctx, id, now); err != nil {
		return nil, err
	}
	sub.Status = models.StatusAwaitingPayment
	sub.QuoteSentAt = &now
	return sub, nil
}

// SendPaymentLink obtains a payable link from the payment provider and emails
// it to the customer.
func (s *Service) SendPaymentLink(ctx context.Context, id primitive.ObjectID, pricing *models.PricingUpdate) (*models.Submission, error) {
	sub, err := s.prepareSend(ctx, id, pricing)
	if err != nil {
		return nil, err
	}

	currency := currencyOrDefault(sub.Currency)
	description := fmt.Sprintf("Cethos %s — quote %s", sub.ServiceType, sub.ID.Hex())
	payURL, err := s.payments.CreatePaymentLink(ctx, *sub.QuotedPrice, currency, description)
	if err != nil {
		return nil, fmt.Errorf("payment link failed (pricing was saved): %w", err)
	}

	html, err := notifications.RenderPaymentLinkHTML(notifications.PaymentLinkEmailData{
		FullName:    sub.FullName,
		QuotedPrice: *sub.QuotedPrice,
		Currency:    currency,
		PaymentURL:  payURL,
	})
	if err != nil {
		return nil, err
	}
	if err := s.mailer.Send([]string{sub.Email}, "Complete your payment — Cethos", html, ""); err != nil {
		return nil, fmt.Errorf("payment link email failed (pricing was saved): %w", err)
	}

	now := time.Now()
	if err := s.subs.MarkPaymentLinkSent(ctx, id, now); err != nil {
		return nil, err
	}
	sub.Status = models.StatusAwaitingPayment
	sub.PaymentLinkSentAt = &now
	return sub, nil
}

// prepareSend loads the record, applies any pricing from the request, and
// enforces the send guards.
func (s *Service) prepareSend(ctx context.Context, id primitive.ObjectID, pricing *models.PricingUpdate) (*models.Submission, error) {
	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status.SendActionsLocked() {
		return nil, ErrLocked
	}

	if pricing != nil && !pricing.Empty() {
		if err := s.subs.UpdatePricing(ctx, id, *pricing); err != nil {
			return nil, err
		}
		applyPricing(sub, *pricing)
	}

	if sub.QuotedPrice == nil {
		return nil, ErrNoQuotedPrice
	}
	return sub, nil
}

// Reject closes the request. There is no un-reject.
func (s *Service) Reject(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	return s.subs.Transition(ctx, id, models.StatusRejected)
}

// Escalate flags the request for senior review without blocking other actions.
func (s *Service) Escalate(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	return s.subs.Transition(ctx, id, models.StatusEscalated)
}

// MarkPaid records the external payment event.
func (s *Service) MarkPaid(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	return s.subs.Transition(ctx, id, models.StatusPaid)
}

// MarkConverted records the back-office conversion of a paid quote.
func (s *Service) MarkConverted(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	return s.subs.Transition(ctx, id, models.StatusConverted)
}

func applyPricing(sub *models.Submission, p models.PricingUpdate) {
	if p.QuotedPrice != nil {
		sub.QuotedPrice = p.QuotedPrice
	}
	if p.Currency != nil {
		sub.Currency = *p.Currency
	}
	if p.TurnaroundDays != nil {
		sub.TurnaroundDays = p.TurnaroundDays
	}
	if p.InternalNotes != nil {
		sub.InternalNotes = *p.InternalNotes
	}
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "CAD"
	}
	return c
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
