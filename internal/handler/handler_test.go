package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/handler/dto"
	hmocks "github.com/kioooy/SWP391-Project-sub001/internal/handler/mocks"
	"github.com/kioooy/SWP391-Project-sub001/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSupplySvc, *hmocks.MockPeriodSvc, *hmocks.MockRegistrationSvc, http.Handler) {
	t.Helper()
	supplySvc := hmocks.NewMockSupplySvc(t)
	periodSvc := hmocks.NewMockPeriodSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)

	h := NewHandler(supplySvc, periodSvc, registrationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/blood-requests", h.SubmitBloodRequest)
		api.POST("/blood-requests/:id/mobilize", h.RequestMobilization)
		api.GET("/mobilizations", h.ListMobilizations)
		api.GET("/periods", h.ListPeriods)
		api.GET("/events", h.ListEvents)
		api.POST("/events/:id/register", h.RegisterForEvent)
	}

	return supplySvc, periodSvc, registrationSvc, r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Blood requests ---

func TestHandler_SubmitBloodRequest_Booked(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	outcome := &domain.BookingOutcome{
		State: domain.StateBooked,
		Trace: []domain.WorkflowState{
			domain.StateIdle, domain.StateSearching,
			domain.StateSufficient, domain.StateBooked,
		},
		Snapshot: &domain.InventorySnapshot{
			BloodType:         domain.BloodAPos,
			Component:         domain.ComponentWholeBlood,
			AvailableVolumeMl: 500,
			QueriedAt:         time.Now().UTC(),
		},
	}

	supplySvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(outcome, nil)

	w := postJSON(t, r, "/api/blood-requests", dto.SubmitBloodRequest{
		BloodType:   "A+",
		Component:   "whole-blood",
		VolumeMl:    "200",
		DesiredDate: "2025-07-01",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp.State)
	assert.Equal(t, 500.0, resp.Snapshot.AvailableVolumeMl)
}

func TestHandler_SubmitBloodRequest_MobilizationOffered(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	outcome := &domain.BookingOutcome{
		State: domain.StateMobilizationOffered,
		Trace: []domain.WorkflowState{
			domain.StateIdle, domain.StateSearching,
			domain.StateInsufficient, domain.StateMobilizationOffered,
		},
		ShortfallMl:    100,
		MobilizationID: uuid.New().String(),
	}

	supplySvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(outcome, nil)

	w := postJSON(t, r, "/api/blood-requests", dto.SubmitBloodRequest{
		BloodType:   "A+",
		Component:   "whole-blood",
		VolumeMl:    "200",
		DesiredDate: "2025-07-01",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mobilization_offered", resp.State)
	assert.Equal(t, 100.0, resp.ShortfallMl)
	assert.NotEmpty(t, resp.MobilizationID)
}

func TestHandler_SubmitBloodRequest_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/blood-requests", map[string]string{"blood_type": "A+"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBloodRequest_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/blood-requests", dto.SubmitBloodRequest{
		BloodType:   "A+",
		Component:   "whole-blood",
		VolumeMl:    "200",
		DesiredDate: "next tuesday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBloodRequest_ValidationError(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	supplySvc.EXPECT().
		Submit(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := postJSON(t, r, "/api/blood-requests", dto.SubmitBloodRequest{
		BloodType:   "Z+",
		Component:   "whole-blood",
		VolumeMl:    "200",
		DesiredDate: "2025-07-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBloodRequest_UpstreamFailureKeepsOutcome(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	outcome := &domain.BookingOutcome{
		State: domain.StateFailed,
		Trace: []domain.WorkflowState{
			domain.StateIdle, domain.StateSearching, domain.StateFailed,
		},
		FailureReason: "inventory query: service unavailable",
	}

	supplySvc.EXPECT().
		Submit(mock.Anything, mock.Anything).
		Return(outcome, domain.ErrServiceUnavailable)

	w := postJSON(t, r, "/api/blood-requests", dto.SubmitBloodRequest{
		BloodType:   "A+",
		Component:   "whole-blood",
		VolumeMl:    "200",
		DesiredDate: "2025-07-01",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.State)
	assert.NotEmpty(t, resp.FailureReason)
}

func TestHandler_RequestMobilization_Success(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	outcome := &domain.BookingOutcome{
		State: domain.StateMobilizationRequested,
		Trace: []domain.WorkflowState{
			domain.StateMobilizationOffered, domain.StateMobilizationRequested,
		},
		MobilizationID: id,
	}

	supplySvc.EXPECT().RequestMobilization(mock.Anything, id).Return(outcome, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests/"+id+"/mobilize", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mobilization_requested", resp.State)
}

func TestHandler_RequestMobilization_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests/not-a-uuid/mobilize", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestMobilization_NotOffered(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	supplySvc.EXPECT().
		RequestMobilization(mock.Anything, id).
		Return(nil, domain.ErrMobilizationNotOffered)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests/"+id+"/mobilize", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RequestMobilization_NotFound(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	supplySvc.EXPECT().
		RequestMobilization(mock.Anything, id).
		Return(nil, domain.ErrMobilizationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests/"+id+"/mobilize", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMobilizations(t *testing.T) {
	supplySvc, _, _, r := setupRouter(t)

	records := []*domain.MobilizationRecord{
		{ID: "m1", BloodType: domain.BloodAPos, VolumeMl: 200, Status: domain.MobilizationOfferedStatus, CreatedAt: time.Now()},
		{ID: "m2", BloodType: domain.BloodONeg, VolumeMl: 450, Status: domain.MobilizationRequestedStatus, CreatedAt: time.Now()},
	}

	supplySvc.EXPECT().ListMobilizations(mock.Anything).Return(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mobilizations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.MobilizationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "m1", resp[0].ID)
	assert.Equal(t, "offered", resp[0].Status)
}

// --- Periods ---

func TestHandler_ListPeriods_Success(t *testing.T) {
	_, periodSvc, _, r := setupRouter(t)

	list := &service.PeriodList{
		Periods: []service.ClassifiedPeriod{
			{
				DonationPeriod: domain.DonationPeriod{ID: "p1", Name: "Summer Drive", Status: domain.PeriodActive},
				Bucket:         domain.BucketOngoing,
			},
		},
		Counts: map[domain.Bucket]int{
			domain.BucketOngoing:   1,
			domain.BucketUpcoming:  0,
			domain.BucketCompleted: 0,
		},
		Total: 1,
	}

	periodSvc.EXPECT().
		List(mock.Anything, domain.BucketOngoing, "summer").
		Return(list, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/periods?bucket=ongoing&q=summer", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PeriodListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Periods, 1)
	assert.Equal(t, "ongoing", resp.Periods[0].Bucket)
	assert.Equal(t, 1, resp.Counts["ongoing"])
}

func TestHandler_ListPeriods_DefaultsToAll(t *testing.T) {
	_, periodSvc, _, r := setupRouter(t)

	periodSvc.EXPECT().
		List(mock.Anything, domain.BucketAll, "").
		Return(&service.PeriodList{Periods: []service.ClassifiedPeriod{}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/periods", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListPeriods_UnknownBucket(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/periods?bucket=expired", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	_, _, registrationSvc, r := setupRouter(t)

	events := []service.ClassifiedEvent{
		{DonationEvent: domain.DonationEvent{ID: "e1"}, Bucket: domain.BucketUpcoming},
		{DonationEvent: domain.DonationEvent{ID: "e2"}, Bucket: domain.BucketOngoing},
	}
	registrationSvc.EXPECT().
		ListEvents(mock.Anything, mock.Anything, mock.Anything).
		Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []service.ClassifiedEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, domain.BucketUpcoming, resp[0].Bucket)
}

func TestHandler_ListEvents_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?from=whenever", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	_, _, registrationSvc, r := setupRouter(t)

	registrationSvc.EXPECT().
		Register(mock.Anything, "tok", "e1").
		Return(&domain.Caller{ID: "u1"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "registered", resp.Status)
	assert.Equal(t, "e1", resp.EventID)
	assert.Equal(t, "u1", resp.UserID)
}

func TestHandler_RegisterForEvent_Unauthenticated(t *testing.T) {
	_, _, registrationSvc, r := setupRouter(t)

	registrationSvc.EXPECT().
		Register(mock.Anything, "", "e1").
		Return(nil, domain.ErrUnauthenticated)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestHandler_RegisterForEvent_Full(t *testing.T) {
	_, _, registrationSvc, r := setupRouter(t)

	registrationSvc.EXPECT().
		Register(mock.Anything, "tok", "e1").
		Return(nil, domain.ErrEventFull)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_UpstreamDown(t *testing.T) {
	_, _, registrationSvc, r := setupRouter(t)

	registrationSvc.EXPECT().
		Register(mock.Anything, "tok", "e1").
		Return(nil, domain.ErrServiceUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
