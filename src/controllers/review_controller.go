package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/qrcode"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/review"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/submissions"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

// ReviewService is the staff workflow surface consumed by the console routes.
type ReviewService interface {
	SavePricing(ctx context.Context, id primitive.ObjectID, p models.PricingUpdate) (*models.Submission, error)
	SendQuote(ctx context.Context, id primitive.ObjectID, pricing *models.PricingUpdate) (*models.Submission, error)
	SendPaymentLink(ctx context.Context, id primitive.ObjectID, pricing *models.PricingUpdate) (*models.Submission, error)
	Reject(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	Escalate(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	MarkConverted(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	QuotePageLink(id primitive.ObjectID) string
}

// ReviewController exposes the send/reject/escalate actions to staff. Unlike
// the public endpoints, its errors carry provider detail: the audience is
// internal and needs it for troubleshooting.
type ReviewController struct {
	svc ReviewService
}

func NewReviewController(svc ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

func parseID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// reviewError maps workflow errors onto status codes for the console.
func reviewError(c *fiber.Ctx, err error) error {
	switch {
	case err == submissions.ErrNotFound:
		return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
	case err == review.ErrNoQuotedPrice:
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case err == review.ErrLocked:
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
}

// SavePricing godoc
// @Summary      Save pricing fields for a submission
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Param        body body models.PricingUpdate true "Pricing"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id}/pricing [patch]
func (ctl *ReviewController) SavePricing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var p models.PricingUpdate
	if err := c.BodyParser(&p); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if fieldErrs := utils.ValidateStruct(p); len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	sub, err := ctl.svc.SavePricing(c.Context(), id, p)
	if err != nil {
		if err == submissions.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(sub)
}

// sendBody lets staff adjust pricing in the same call that sends.
type sendBody struct {
	Pricing *models.PricingUpdate `json:"pricing,omitempty"`
}

// SendQuote godoc
// @Summary      Email the customer their quote
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id}/send-quote [post]
func (ctl *ReviewController) SendQuote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var body sendBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}
	if body.Pricing != nil {
		if fieldErrs := utils.ValidateStruct(*body.Pricing); len(fieldErrs) > 0 {
			return utils.HandleValidationError(c, fieldErrs)
		}
	}

	sub, err := ctl.svc.SendQuote(c.Context(), id, body.Pricing)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// SendPaymentLink godoc
// @Summary      Email the customer a payment link
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id}/send-payment-link [post]
func (ctl *ReviewController) SendPaymentLink(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var body sendBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}
	if body.Pricing != nil {
		if fieldErrs := utils.ValidateStruct(*body.Pricing); len(fieldErrs) > 0 {
			return utils.HandleValidationError(c, fieldErrs)
		}
	}

	sub, err := ctl.svc.SendPaymentLink(c.Context(), id, body.Pricing)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// Reject godoc
// @Summary      Reject a submission (irreversible)
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id}/reject [post]
func (ctl *ReviewController) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	// Rejection is irreversible, so the console has to confirm explicitly.
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.BodyParser(&body); err != nil || !body.Confirm {
		return utils.HandleError(c, fiber.StatusBadRequest, "Rejection must be confirmed with {\"confirm\": true}")
	}

	sub, err := ctl.svc.Reject(c.Context(), id)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// Escalate flags a submission for senior review.
func (ctl *ReviewController) Escalate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	sub, err := ctl.svc.Escalate(c.Context(), id)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// MarkPaid records the external payment event for a quote awaiting payment.
func (ctl *ReviewController) MarkPaid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	sub, err := ctl.svc.MarkPaid(c.Context(), id)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// MarkConverted records the back-office conversion of a paid quote.
func (ctl *ReviewController) MarkConverted(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	sub, err := ctl.svc.MarkConverted(c.Context(), id)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(sub)
}

// PaymentQR renders the customer quote page link as a QR code PNG, for
// printed quotes.
func (ctl *ReviewController) PaymentQR(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	png, err := qrcode.GeneratePNG(ctl.svc.QuotePageLink(id), 256)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
