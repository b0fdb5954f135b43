package controllers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/analytics"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/intake"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

// IntakeController drives the multi-step quote form over HTTP. The form state
// lives in the session store between requests, so any instance can serve any
// step.
type IntakeController struct {
	sessions intake.SessionStore
	subs     intake.Submitter
	tracker  *analytics.Tracker
}

func NewIntakeController(sessions intake.SessionStore, subs intake.Submitter, tracker *analytics.Tracker) *IntakeController {
	return &IntakeController{sessions: sessions, subs: subs, tracker: tracker}
}

// Start godoc
// @Summary      Start a new quote form session
// @Tags         intake
// @Accept       json
// @Produce      json
// @Success      201  {object}  intake.Form
// @Router       /intake [post]
func (ctl *IntakeController) Start(c *fiber.Ctx) error {
	var body struct {
		Location string `json:"location"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	f := intake.New(body.Location)
	if err := ctl.sessions.Save(c.Context(), f); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not start a form session")
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

func (ctl *IntakeController) load(c *fiber.Ctx) (*intake.Form, error) {
	f, err := ctl.sessions.Get(c.Context(), c.Params("sid"))
	if err != nil {
		if err == intake.ErrSessionNotFound {
			return nil, utils.HandleError(c, fiber.StatusNotFound, "Form session not found or expired")
		}
		return nil, utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return f, nil
}

// Get returns the current form state.
func (ctl *IntakeController) Get(c *fiber.Ctx) error {
	f, err := ctl.load(c)
	if f == nil {
		return err
	}
	return c.JSON(f)
}

// UpdateStep stores the posted fields on the current step. Bad values are
// kept; they only block Next, not typing.
func (ctl *IntakeController) UpdateStep(c *fiber.Ctx) error {
	f, err := ctl.load(c)
	if f == nil {
		return err
	}

	if err := f.UpdateCurrent(c.Body()); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid step data: "+err.Error())
	}
	if err := ctl.sessions.Save(c.Context(), f); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not save the form session")
	}
	return c.JSON(f)
}

// Next tries to advance. A 400 with field details means the step blocked.
func (ctl *IntakeController) Next(c *fiber.Ctx) error {
	f, err := ctl.load(c)
	if f == nil {
		return err
	}

	if fieldErrs := f.Next(); len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}
	if err := ctl.sessions.Save(c.Context(), f); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not save the form session")
	}
	return c.JSON(f)
}

// Back always succeeds and keeps the entered data.
func (ctl *IntakeController) Back(c *fiber.Ctx) error {
	f, err := ctl.load(c)
	if f == nil {
		return err
	}

	f.Back()
	if err := ctl.sessions.Save(c.Context(), f); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not save the form session")
	}
	return c.JSON(f)
}

// Submit performs the one network submission of the form, from the review
// step only. On failure the session survives untouched for a retry.
func (ctl *IntakeController) Submit(c *fiber.Ctx) error {
	f, err := ctl.load(c)
	if f == nil {
		return err
	}

	id, fieldErrs, err := f.Submit(c.Context(), ctl.subs, func(event, serviceType, location string) {
		ctl.tracker.Track(context.Background(), event, serviceType, location)
	})
	if err != nil {
		if err == intake.ErrNotAtReview {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		log.Println("❌ form submission failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "We could not save your request. Please try again.")
	}
	if len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	if err := ctl.sessions.Delete(c.Context(), f.ID); err != nil {
		log.Println("⚠️ could not delete submitted form session:", err)
	}
	return c.JSON(fiber.Map{"id": id})
}
