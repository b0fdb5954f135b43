package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/analytics"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

// EventsController accepts fire-and-forget tracking beacons from the site and
// exposes the counters to staff.
type EventsController struct {
	tracker *analytics.Tracker
}

func NewEventsController(tracker *analytics.Tracker) *EventsController {
	return &EventsController{tracker: tracker}
}

type eventRequest struct {
	Event       string `json:"event" validate:"required"`
	ServiceType string `json:"serviceType"`
	Location    string `json:"location"`
}

// Track records one event. Always 202: a lost beacon must never surface to
// the visitor.
func (ctl *EventsController) Track(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	go ctl.tracker.Track(context.Background(), req.Event, req.ServiceType, req.Location)
	return c.SendStatus(fiber.StatusAccepted)
}

// Snapshot returns all counters for the admin dashboard.
func (ctl *EventsController) Snapshot(c *fiber.Ctx) error {
	counters, err := ctl.tracker.Snapshot(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(counters)
}
