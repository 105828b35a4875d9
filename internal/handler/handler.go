package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/handler/dto"
	"github.com/kioooy/SWP391-Project-sub001/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type SupplySvc interface {
	Submit(ctx context.Context, input service.SubmitInput) (*domain.BookingOutcome, error)
	RequestMobilization(ctx context.Context, offerID string) (*domain.BookingOutcome, error)
	ListMobilizations(ctx context.Context) ([]*domain.MobilizationRecord, error)
}

type PeriodSvc interface {
	List(ctx context.Context, bucket domain.Bucket, query string) (*service.PeriodList, error)
}

type RegistrationSvc interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]service.ClassifiedEvent, error)
	Register(ctx context.Context, token, eventID string) (*domain.Caller, error)
}

type Handler struct {
	supplyService       SupplySvc
	periodService       PeriodSvc
	registrationService RegistrationSvc
}

func NewHandler(supplyService SupplySvc, periodService PeriodSvc, registrationService RegistrationSvc) *Handler {
	return &Handler{
		supplyService:       supplyService,
		periodService:       periodService,
		registrationService: registrationService,
	}
}

// Blood requests

func (h *Handler) SubmitBloodRequest(c *ginext.Context) {
	var req dto.SubmitBloodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	desiredDate, err := parseDate(req.DesiredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid desired_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	input := service.SubmitInput{
		BloodType:   req.BloodType,
		Component:   req.Component,
		VolumeMl:    req.VolumeMl,
		DesiredDate: desiredDate,
		Notes:       req.Notes,
	}

	outcome, err := h.supplyService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleWorkflowError(c, outcome, err)
		return
	}

	status := http.StatusOK
	if outcome.State == domain.StateBooked {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) RequestMobilization(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid mobilization id"})
		return
	}

	outcome, err := h.supplyService.RequestMobilization(c.Request.Context(), id)
	if err != nil {
		h.handleWorkflowError(c, outcome, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) ListMobilizations(c *ginext.Context) {
	records, err := h.supplyService.ListMobilizations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MobilizationResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, dto.ToMobilizationResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}

// Periods

func (h *Handler) ListPeriods(c *ginext.Context) {
	bucket, err := domain.ParseBucket(c.Query("bucket"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.periodService.List(c.Request.Context(), bucket, c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodListResponse(list))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	from, err := parseOptionalDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, err := parseOptionalDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date"})
		return
	}

	events, err := h.registrationService.ListEvents(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	caller, err := h.registrationService.Register(c.Request.Context(), bearerToken(c), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegistrationResponse{
		Status:  "registered",
		EventID: eventID,
		UserID:  caller.ID,
	})
}

// handleWorkflowError keeps the workflow outcome (with its state trace and
// failure reason) in the error response body whenever one exists.
func (h *Handler) handleWorkflowError(c *ginext.Context, outcome *domain.BookingOutcome, err error) {
	if outcome == nil || outcome.State != domain.StateFailed {
		h.handleError(c, err)
		return
	}

	c.Set("error", err.Error())
	c.JSON(statusForError(err), dto.ToOutcomeResponse(outcome))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	status := statusForError(err)
	if status == http.StatusUnauthorized {
		// The presentation layer redirects to its login page on 401.
		c.Header("WWW-Authenticate", "Bearer")
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrMobilizationNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrMobilizationNotOffered):
		return http.StatusConflict

	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

func bearerToken(c *ginext.Context) string {
	auth := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return ""
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s)
}
