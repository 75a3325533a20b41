package scribe

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/domain/export"
	"github.com/randsley/MediScribe-sub004/internal/platform/auth"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
)

// maskedMessage is the only content-safety detail production clients see.
// The matched phrase can itself read like a diagnostic statement, so it never
// leaves the server outside development.
const maskedMessage = "could not produce compliant output, document manually"

type Handler struct {
	svc *Service
	dev bool
	log zerolog.Logger
}

func NewHandler(svc *Service, dev bool, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, dev: dev, log: log}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.POST("/drafts/:kind/$validate", h.ValidateDraft)
	e.POST("/drafts/:kind/$assemble", h.AssembleDraft)
	e.GET("/exports/:id", h.GetExport)
}

type validateRequest struct {
	Language string          `json:"language"`
	Draft    json.RawMessage `json:"draft"`
}

type party struct {
	ID      string `json:"id"`
	Display string `json:"display"`
}

type assembleRequest struct {
	Language         string          `json:"language"`
	Patient          party           `json:"patient"`
	Organization     party           `json:"organization"`
	Authored         time.Time       `json:"authored"`
	ReviewState      string          `json:"review_state"`
	Persist          bool            `json:"persist"`
	ImageData        string          `json:"image_data"`
	ImageContentType string          `json:"image_content_type"`
	Draft            json.RawMessage `json:"draft"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ValidateDraft(c echo.Context) error {
	kind := export.Kind(c.Param("kind"))
	if !kind.Valid() {
		return c.JSON(http.StatusNotFound, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeInvalid, "unknown draft kind"))
	}

	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeStructure, "request body is not valid JSON"))
	}
	if len(req.Draft) == 0 {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeRequired, "draft is required"))
	}

	if err := h.svc.Validate(kind, req.Draft, req.Language); err != nil {
		outcome, status := h.outcomeFromError(err)
		return c.JSON(status, outcome)
	}
	return c.JSON(http.StatusOK, fhir.SuccessOutcome("draft passed all validation gates"))
}

func (h *Handler) AssembleDraft(c echo.Context) error {
	kind := export.Kind(c.Param("kind"))
	if !kind.Valid() {
		return c.JSON(http.StatusNotFound, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeInvalid, "unknown draft kind"))
	}

	var req assembleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeStructure, "request body is not valid JSON"))
	}
	if len(req.Draft) == 0 {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeRequired, "draft is required"))
	}

	practitionerID, ok := auth.PractitionerID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeProcessing, "no authenticated practitioner"))
	}

	actx := draft.AssemblyContext{
		PatientID:           req.Patient.ID,
		PatientDisplay:      req.Patient.Display,
		PractitionerID:      practitionerID,
		PractitionerDisplay: auth.DisplayName(c.Request().Context()),
		OrganizationID:      req.Organization.ID,
		OrganizationName:    req.Organization.Display,
		Authored:            req.Authored,
		ReviewState:         draft.ReviewState(req.ReviewState),
		Language:            req.Language,
	}
	if req.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
				fhir.IssueSeverityError, fhir.IssueTypeInvalid, "image_data is not valid base64"))
		}
		actx.ImageData = data
		actx.ImageContentType = req.ImageContentType
	}

	bundle, exportID, err := h.svc.Assemble(c.Request().Context(), kind, req.Draft, actx, req.Persist)
	if err != nil {
		outcome, status := h.outcomeFromError(err)
		return c.JSON(status, outcome)
	}

	if req.Persist {
		c.Response().Header().Set("Location", "/exports/"+exportID.String())
	}
	return c.JSON(http.StatusOK, bundle)
}

func (h *Handler) GetExport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeInvalid, "invalid export id"))
	}
	bundle, _, err := h.svc.Retrieve(c.Request().Context(), id)
	if errors.Is(err, ErrExportsDisabled) {
		return c.JSON(http.StatusNotFound, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeNotSupported, ErrExportsDisabled.Error()))
	}
	if errors.Is(err, export.ErrNotFound) {
		return c.JSON(http.StatusNotFound, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeProcessing, "export not found"))
	}
	if err != nil {
		outcome, status := h.outcomeFromError(err)
		return c.JSON(status, outcome)
	}
	return c.JSON(http.StatusOK, bundle)
}

// outcomeFromError translates the validation/assembly error taxonomy into an
// OperationOutcome plus HTTP status. Structural failures keep their detail in
// every mode; content-safety failures are masked outside development.
func (h *Handler) outcomeFromError(err error) (*fhir.OperationOutcome, int) {
	var verrs draft.ValidationErrors
	if errors.As(err, &verrs) {
		return h.validationOutcome(verrs), http.StatusUnprocessableEntity
	}
	var verr *draft.ValidationError
	if errors.As(err, &verr) {
		return h.validationOutcome(draft.ValidationErrors{verr}), http.StatusUnprocessableEntity
	}
	var serr *draft.SchemaError
	if errors.As(err, &serr) {
		return h.validationOutcome(draft.ValidationErrors{serr.AsValidationError()}), http.StatusUnprocessableEntity
	}
	var sterr *draft.StateError
	if errors.As(err, &sterr) {
		return fhir.NewOperationOutcome(fhir.IssueSeverityError, fhir.IssueTypeBusinessRule, sterr.Error()), http.StatusConflict
	}
	var rerr *draft.ResourceConsistencyError
	if errors.As(err, &rerr) {
		return fhir.NewOperationOutcome(fhir.IssueSeverityError, fhir.IssueTypeRequired, rerr.Error()), http.StatusBadRequest
	}

	h.log.Error().Err(err).Msg("request failed")
	if h.dev {
		return fhir.NewOperationOutcome(fhir.IssueSeverityFatal, fhir.IssueTypeException, err.Error()), http.StatusInternalServerError
	}
	return fhir.NewOperationOutcome(fhir.IssueSeverityFatal, fhir.IssueTypeException, "internal error"), http.StatusInternalServerError
}

func (h *Handler) validationOutcome(verrs draft.ValidationErrors) *fhir.OperationOutcome {
	issues := make([]fhir.OperationOutcomeIssue, 0, len(verrs))
	for _, e := range verrs {
		issue := fhir.OperationOutcomeIssue{
			Severity:    issueSeverity(e.Severity),
			Code:        issueType(e.Code),
			Details:     &fhir.CodeableConcept{Text: e.Code},
			Diagnostics: e.Message,
		}
		if e.Field != "" {
			issue.Expression = []string{e.Field}
		}
		if !h.dev && contentSafetyCode(e.Code) {
			issue.Diagnostics = maskedMessage
			issue.Expression = nil
			if h.log.GetLevel() <= zerolog.DebugLevel {
				h.log.Debug().Str("field", e.Field).Str("code", e.Code).Msg("masked content-safety failure")
			}
		}
		issues = append(issues, issue)
	}
	return &fhir.OperationOutcome{ResourceType: "OperationOutcome", Issue: issues}
}

func contentSafetyCode(code string) bool {
	return code == draft.CodeForbiddenPhrase || code == draft.CodeLimitationsMismatch
}

func issueSeverity(s draft.Severity) string {
	switch s {
	case draft.SeverityCritical:
		return fhir.IssueSeverityFatal
	case draft.SeverityWarning:
		return fhir.IssueSeverityWarning
	default:
		return fhir.IssueSeverityError
	}
}

func issueType(code string) string {
	switch code {
	case draft.CodeInvalidJSON:
		return fhir.IssueTypeInvalid
	case draft.CodeExtraTopLevelKeys, draft.CodeDecodingFailed:
		return fhir.IssueTypeStructure
	case draft.CodeMissingField:
		return fhir.IssueTypeRequired
	case draft.CodeLimitationsMismatch, draft.CodeForbiddenPhrase:
		return fhir.IssueTypeBusinessRule
	default:
		return fhir.IssueTypeProcessing
	}
}
