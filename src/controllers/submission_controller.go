package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/notifications"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/submissions"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/uploads"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

// SubmissionService is the slice of the submission service the HTTP layer
// uses. Narrowed to an interface so handler tests can mock persistence.
type SubmissionService interface {
	Create(ctx context.Context, sub *models.Submission) (*models.Submission, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	List(ctx context.Context, status models.Status, limit int64) ([]models.Submission, error)
	UpdatePricing(ctx context.Context, id primitive.ObjectID, p models.PricingUpdate) error
	Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.Submission, error)
}

type SubmissionController struct {
	svc        SubmissionService
	store      uploads.BlobStore
	mailer     notifications.Mailer
	recipients []string
	baseURL    string
}

func NewSubmissionController(svc SubmissionService, store uploads.BlobStore, mailer notifications.Mailer, recipients []string, baseURL string) *SubmissionController {
	return &SubmissionController{svc: svc, store: store, mailer: mailer, recipients: recipients, baseURL: baseURL}
}

// CreateSubmission godoc
// @Summary      Submit a quote request
// @Description  Accepts a quote request as JSON or multipart (with file parts named "files")
// @Tags         submissions
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body body models.SubmissionInput true "Quote request"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions [post]
func (ctl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var in models.SubmissionInput
	fieldErrs := map[string]string{}

	if isMultipart(c) {
		parsed, parseErrs, err := inputFromMultipart(c)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid multipart body: "+err.Error())
		}
		in = *parsed
		for k, v := range parseErrs {
			fieldErrs[k] = v
		}
	} else {
		if err := c.BodyParser(&in); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	for k, v := range utils.ValidateStruct(in) {
		fieldErrs[k] = v
	}

	var sd *models.ServiceData
	if in.ServiceType != "" {
		var sdErrs map[string]string
		sd, sdErrs = models.ParseServiceData(models.ServiceType(in.ServiceType), in.ServiceData)
		for k, v := range sdErrs {
			fieldErrs[k] = v
		}
	}

	if len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	sub := in.ToSubmission(sd)
	sub.FileURLs = ctl.storeFiles(c, sub.ServiceType)

	created, err := ctl.svc.Create(c.Context(), sub)
	if err != nil {
		log.Println("❌ failed to persist submission:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "We could not save your request. Please try again.")
	}

	// The record is durable; the internal alert is best-effort.
	if err := ctl.notifyTeam(created); err != nil {
		log.Println("⚠️ internal notification failed for", created.ID.Hex(), ":", err)
	}

	return c.JSON(fiber.Map{"id": created.ID.Hex()})
}

// storeFiles uploads every non-empty file part. A failed upload is logged and
// the file skipped; the submission itself must still go through.
func (ctl *SubmissionController) storeFiles(c *fiber.Ctx, serviceType models.ServiceType) []string {
	stored := []string{}
	if !isMultipart(c) {
		return stored
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return stored
	}

	for _, fh := range form.File["files"] {
		if fh.Size == 0 {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			log.Println("⚠️ skipping unreadable file part:", fh.Filename, err)
			continue
		}
		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			log.Println("⚠️ skipping unreadable file part:", fh.Filename, readErr)
			continue
		}

		key := uploads.ObjectKey(string(serviceType), fh.Filename)
		contentType := uploads.DetectContentType(data, fh.Header.Get("Content-Type"))
		path, err := ctl.store.Put(c.Context(), key, data, contentType)
		if err != nil {
			log.Println("⚠️ file upload failed, continuing without it:", fh.Filename, err)
			continue
		}
		stored = append(stored, path)
	}
	return stored
}

func (ctl *SubmissionController) notifyTeam(sub *models.Submission) error {
	if len(ctl.recipients) == 0 {
		return nil
	}
	html, err := notifications.RenderNewSubmissionHTML(notifications.NewSubmissionData{
		SubmissionID:    sub.ID.Hex(),
		ServiceType:     string(sub.ServiceType),
		FullName:        sub.FullName,
		Email:           sub.Email,
		Phone:           sub.Phone,
		CompanyName:     sub.CompanyName,
		SourceLanguage:  sub.SourceLanguage,
		TargetLanguages: sub.TargetLanguages,
		Deadline:        sub.Deadline,
		FileCount:       len(sub.FileURLs),
		ReviewLink:      ctl.baseURL + "/admin/submissions/" + sub.ID.Hex(),
	})
	if err != nil {
		return err
	}
	subject := "New quote request: " + string(sub.ServiceType) + " — " + sub.FullName
	return ctl.mailer.Send(ctl.recipients, subject, html, sub.Email)
}

// GetSubmission godoc
// @Summary      Fetch one submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func (ctl *SubmissionController) GetSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	sub, err := ctl.svc.GetByID(c.Context(), id)
	if err != nil {
		if err == submissions.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(sub)
}

// ListSubmissions backs the review queue. Filter with ?status= and ?limit=.
func (ctl *SubmissionController) ListSubmissions(c *fiber.Ctx) error {
	status := models.Status(c.Query("status"))
	if status != "" && !models.IsKnownStatus(status) {
		return utils.HandleError(c, fiber.StatusBadRequest, "Unknown status filter")
	}

	var limit int64
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	subs, err := ctl.svc.List(c.Context(), status, limit)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(subs)
}

type submissionPatch struct {
	models.PricingUpdate
	Status *models.Status `json:"status,omitempty"`
}

// PatchSubmission godoc
// @Summary      Update pricing fields and/or status
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Param        body body models.PricingUpdate true "Fields to update"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [patch]
func (ctl *SubmissionController) PatchSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var patch submissionPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if fieldErrs := utils.ValidateStruct(patch.PricingUpdate); len(fieldErrs) > 0 {
		return utils.HandleValidationError(c, fieldErrs)
	}

	if !patch.PricingUpdate.Empty() {
		if err := ctl.svc.UpdatePricing(c.Context(), id, patch.PricingUpdate); err != nil {
			if err == submissions.ErrNotFound {
				return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
			}
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	if patch.Status != nil {
		if !models.IsKnownStatus(*patch.Status) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Unknown status")
		}
		if _, err := ctl.svc.Transition(c.Context(), id, *patch.Status); err != nil {
			if err == submissions.ErrNotFound {
				return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
			}
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
	}

	sub, err := ctl.svc.GetByID(c.Context(), id)
	if err != nil {
		if err == submissions.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(sub)
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/")
}

// inputFromMultipart reads the form fields of a multipart submit. Repeated
// targetLanguages fields are supported, as is a single comma-separated value.
func inputFromMultipart(c *fiber.Ctx) (*models.SubmissionInput, map[string]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	val := func(key string) string {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	in := &models.SubmissionInput{
		ServiceType:    val("serviceType"),
		FullName:       val("fullName"),
		Email:          val("email"),
		Phone:          val("phone"),
		CompanyName:    val("companyName"),
		JobTitle:       val("jobTitle"),
		SourceLanguage: val("sourceLanguage"),
		Deadline:       val("deadline"),
		Notes:          val("notes"),
	}

	targets := form.Value["targetLanguages"]
	if len(targets) == 1 && strings.Contains(targets[0], ",") {
		targets = strings.Split(targets[0], ",")
	}
	for _, t := range targets {
		if t = strings.TrimSpace(t); t != "" {
			in.TargetLanguages = append(in.TargetLanguages, t)
		}
	}

	fieldErrs := map[string]string{}
	if wc := val("wordCount"); wc != "" {
		n, err := strconv.Atoi(wc)
		if err != nil {
			fieldErrs["wordCount"] = "wordCount must be a whole number"
		} else {
			in.WordCount = &n
		}
	}
	if sd := val("serviceData"); sd != "" {
		in.ServiceData = json.RawMessage(sd)
	}

	return in, fieldErrs, nil
}
