package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/staff"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

type AuthController struct {
	staff *staff.Service
}

func NewAuthController(svc *staff.Service) *AuthController {
	return &AuthController{staff: svc}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary      Staff login for the review console
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if fieldErrs := utils.ValidateStruct(req); len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	token, member, err := ctl.staff.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return c.JSON(fiber.Map{"token": token, "staff": member})
}

// Me returns the account behind the presented token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	staffID, _ := c.Locals("staffId").(string)
	id, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	member, err := ctl.staff.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(member)
}
