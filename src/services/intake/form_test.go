package intake

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
)

type fakeSubmitter struct {
	created []*models.Submission
	err     error
}

func (f *fakeSubmitter) Create(_ context.Context, sub *models.Submission) (*models.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub.ID = primitive.NewObjectID()
	f.created = append(f.created, sub)
	return sub, nil
}

func fillDetails(f *Form) {
	f.Details = DetailsData{
		ServiceType: string(models.ServiceAcademicTranscript),
		Deadline:    "standard",
	}
}

func fillLanguages(f *Form) {
	f.Languages = LanguagesData{
		SourceLanguage:  "fr",
		TargetLanguages: []string{"en"},
	}
}

func fillContact(f *Form) {
	f.Contact = ContactData{
		FullName:    "Jane Doe",
		Email:       "jane@x.com",
		Phone:       "555-0100",
		CompanyName: "Acme",
	}
}

func TestFormNavigation(t *testing.T) {
	t.Run("ForwardBlockedUntilStepValid", func(t *testing.T) {
		f := New("pricing-page")
		assert.Equal(t, StepDetails, f.Step)

		fieldErrs := f.Next()
		assert.NotEmpty(t, fieldErrs)
		assert.Equal(t, StepDetails, f.Step)

		fillDetails(f)
		assert.Empty(t, f.Next())
		assert.Equal(t, StepLanguages, f.Step)
	})

	t.Run("LanguagesRequireAtLeastOneTarget", func(t *testing.T) {
		f := New("")
		fillDetails(f)
		require.Empty(t, f.Next())

		f.Languages = LanguagesData{SourceLanguage: "fr"}
		fieldErrs := f.Next()
		assert.Contains(t, fieldErrs, "targetLanguages")
		assert.Equal(t, StepLanguages, f.Step)
	})

	t.Run("BackAlwaysAllowedAndPreservesData", func(t *testing.T) {
		f := New("")
		fillDetails(f)
		require.Empty(t, f.Next())
		fillLanguages(f)
		require.Empty(t, f.Next())
		assert.Equal(t, StepContact, f.Step)

		f.Back()
		assert.Equal(t, StepLanguages, f.Step)
		assert.Equal(t, []string{"en"}, f.Languages.TargetLanguages)
		assert.Equal(t, "standard", f.Details.Deadline)

		f.Back()
		f.Back() // already at the first step; stays put
		assert.Equal(t, StepDetails, f.Step)
	})

	t.Run("InvalidEmailBlocksContactStep", func(t *testing.T) {
		f := New("")
		fillDetails(f)
		require.Empty(t, f.Next())
		fillLanguages(f)
		require.Empty(t, f.Next())

		fillContact(f)
		f.Contact.Email = "not-an-email"
		fieldErrs := f.Next()
		assert.Contains(t, fieldErrs, "email")
		assert.Equal(t, StepContact, f.Step)
	})

	t.Run("ConditionalServiceDataBlocksDetails", func(t *testing.T) {
		f := New("")
		f.Details = DetailsData{
			ServiceType: string(models.ServiceTranscription),
			Deadline:    "rush",
			ServiceData: json.RawMessage(`{"style":"legal","audioMinutes":45}`),
		}
		fieldErrs := f.Next()
		assert.Contains(t, fieldErrs, "serviceData.legalSubType")

		f.Details.ServiceData = json.RawMessage(`{"style":"legal","audioMinutes":45,"legalSubType":"hearing"}`)
		assert.Empty(t, f.Next())
	})
}

func TestFormSubmit(t *testing.T) {
	advanceToReview := func(t *testing.T) *Form {
		f := New("landing-footer")
		fillDetails(f)
		require.Empty(t, f.Next())
		fillLanguages(f)
		require.Empty(t, f.Next())
		fillContact(f)
		require.Empty(t, f.Next())
		require.Equal(t, StepReview, f.Step)
		return f
	}

	t.Run("OnlyReviewStepMaySubmit", func(t *testing.T) {
		f := New("")
		_, _, err := f.Submit(context.Background(), &fakeSubmitter{}, nil)
		assert.ErrorIs(t, err, ErrNotAtReview)
	})

	t.Run("SuccessCreatesPendingSubmissionAndTracks", func(t *testing.T) {
		f := advanceToReview(t)
		submitter := &fakeSubmitter{}

		tracked := make(chan [3]string, 1)
		id, fieldErrs, err := f.Submit(context.Background(), submitter, func(event, serviceType, location string) {
			tracked <- [3]string{event, serviceType, location}
		})
		require.NoError(t, err)
		require.Empty(t, fieldErrs)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, f.SubmittedID)

		require.Len(t, submitter.created, 1)
		created := submitter.created[0]
		assert.Equal(t, models.StatusPending, created.Status)
		assert.Equal(t, "jane@x.com", created.Email)
		assert.Nil(t, created.QuotedPrice)

		select {
		case ev := <-tracked:
			assert.Equal(t, "quote_submitted", ev[0])
			assert.Equal(t, string(models.ServiceAcademicTranscript), ev[1])
			assert.Equal(t, "landing-footer", ev[2])
		case <-time.After(time.Second):
			t.Fatal("analytics event was never fired")
		}
	})

	t.Run("FailureKeepsFormDataForRetry", func(t *testing.T) {
		f := advanceToReview(t)
		submitter := &fakeSubmitter{err: assert.AnError}

		_, _, err := f.Submit(context.Background(), submitter, nil)
		require.Error(t, err)
		assert.Empty(t, f.SubmittedID)
		assert.Equal(t, StepReview, f.Step)
		assert.Equal(t, "Jane Doe", f.Contact.FullName)

		// Manual retry works without re-entering anything.
		submitter.err = nil
		id, fieldErrs, err := f.Submit(context.Background(), submitter, nil)
		require.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.NotEmpty(t, id)
	})

	t.Run("RepeatedSubmitCreatesDistinctRecords", func(t *testing.T) {
		// Documents current behavior: there is no dedup of double submits.
		// Whether that is a product gap is an open question upstream.
		submitter := &fakeSubmitter{}

		f1 := advanceToReview(t)
		id1, _, err := f1.Submit(context.Background(), submitter, nil)
		require.NoError(t, err)

		f2 := advanceToReview(t)
		id2, _, err := f2.Submit(context.Background(), submitter, nil)
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
		assert.Len(t, submitter.created, 2)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	f := New("header")
	fillDetails(f)
	require.NoError(t, store.Save(ctx, f))

	got, err := store.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, "standard", got.Details.Deadline)

	// The stored copy is detached from the caller's instance.
	f.Details.Deadline = "rush"
	got, err = store.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "standard", got.Details.Deadline)

	// And the copy handed out by Get is detached too: mutating its slices
	// must not bleed into the stored form.
	fillLanguages(got)
	require.NoError(t, store.Save(ctx, got))

	aliased, err := store.Get(ctx, got.ID)
	require.NoError(t, err)
	aliased.Languages.TargetLanguages[0] = "de"
	aliased.Details.ServiceData = json.RawMessage(`{"tampered":true}`)

	fresh, err := store.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, fresh.Languages.TargetLanguages)
	assert.NotEqual(t, json.RawMessage(`{"tampered":true}`), fresh.Details.ServiceData)

	require.NoError(t, store.Delete(ctx, f.ID))
	_, err = store.Get(ctx, f.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
