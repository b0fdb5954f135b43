package submissions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
)

var ErrNotFound = errors.New("submission not found")

// Service owns all reads and writes of the submissions collection. Every
// quote request, whichever form it came from, lands in this one collection.
type Service struct {
	col *mongo.Collection
}

func NewService(col *mongo.Collection) *Service {
	return &Service{col: col}
}

// Create inserts a new pending submission. Each call creates a fresh record;
// repeated submits are not deduplicated.
func (s *Service) Create(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	if len(sub.TargetLanguages) == 0 {
		return nil, errors.New("at least one target language is required")
	}

	sub.ID = primitive.NewObjectID()
	sub.Status = models.StatusPending
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	if sub.FileURLs == nil {
		sub.FileURLs = []string{}
	}

	res, err := s.col.InsertOne(ctx, sub)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}

	log.Printf("[submissions] inserted id=%s service=%s files=%d",
		sub.ID.Hex(), sub.ServiceType, len(sub.FileURLs))

	return sub, nil
}

// GetByID retrieves one submission.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var sub models.Submission
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// List returns submissions for the review queue, newest first. An empty
// status means all statuses.
func (s *Service) List(ctx context.Context, status models.Status, limit int64) ([]models.Submission, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := s.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// UpdatePricing writes the staff pricing fields. Allowed in any status so
// staff can correct a price even after the quote went out.
func (s *Service) UpdatePricing(ctx context.Context, id primitive.ObjectID, p models.PricingUpdate) error {
	if p.Empty() {
		return nil
	}

	set := bson.M{}
	if p.QuotedPrice != nil {
		set["quotedPrice"] = *p.QuotedPrice
	}
	if p.Currency != nil {
		if !models.IsSupportedCurrency(*p.Currency) {
			return fmt.Errorf("unsupported currency %q", *p.Currency)
		}
		set["currency"] = *p.Currency
	}
	if p.TurnaroundDays != nil {
		set["turnaroundDays"] = *p.TurnaroundDays
	}
	if p.InternalNotes != nil {
		set["internalNotes"] = *p.InternalNotes
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition moves a submission to a new status, enforcing the workflow
// table. The single-row update is the only concurrency boundary; two staff
// members editing the same record race last-write-wins, as accepted.
func (s *Service) Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.Submission, error) {
	sub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(sub.Status, to) {
		return nil, fmt.Errorf("cannot move submission from %s to %s", sub.Status, to)
	}
	// awaiting_payment means a quote exists; the workflow table alone cannot
	// see record contents, so the price guard lives here.
	if to == models.StatusAwaitingPayment && sub.QuotedPrice == nil {
		return nil, errors.New("a quoted price must be set before awaiting_payment")
	}

	_, err = s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		return nil, err
	}
	sub.Status = to
	return sub, nil
}

// MarkQuoteSent records a successful quote email: status moves to
// awaiting_payment (a re-send keeps it there) and quoteSentAt is bumped to
// the latest send time.
func (s *Service) MarkQuoteSent(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return s.markSent(ctx, id, bson.M{"status": models.StatusAwaitingPayment, "quoteSentAt": at})
}

// MarkPaymentLinkSent records a successful payment-link email.
func (s *Service) MarkPaymentLinkSent(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return s.markSent(ctx, id, bson.M{"status": models.StatusAwaitingPayment, "paymentLinkSentAt": at})
}

func (s *Service) markSent(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
