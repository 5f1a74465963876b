package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"faculty-ops/internal/leave"
	leaveerrors "faculty-ops/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	submitFn        func(ctx context.Context, actorID string, req leave.SubmitLeaveRequest) (leave.ApplicationResponse, error)
	approveFn       func(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error)
	rejectFn        func(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error)
	getByIDFn       func(ctx context.Context, id string) (leave.ApplicationResponse, error)
	listPendingFn   func(ctx context.Context, role string) ([]leave.ApplicationResponse, error)
	listByFacultyFn func(ctx context.Context, facultyID string) ([]leave.ApplicationResponse, error)
}

func (f *fakeService) Submit(ctx context.Context, actorID string, req leave.SubmitLeaveRequest) (leave.ApplicationResponse, error) {
	return f.submitFn(ctx, actorID, req)
}
func (f *fakeService) Approve(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error) {
	return f.approveFn(ctx, actorID, role, id)
}
func (f *fakeService) Reject(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error) {
	return f.rejectFn(ctx, actorID, role, id)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (leave.ApplicationResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) ListPending(ctx context.Context, role string) ([]leave.ApplicationResponse, error) {
	return f.listPendingFn(ctx, role)
}
func (f *fakeService) ListByFaculty(ctx context.Context, facultyID string) ([]leave.ApplicationResponse, error) {
	return f.listByFacultyFn(ctx, facultyID)
}

func TestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	facultyID := uuid.New().String()

	svc := &fakeService{
		submitFn: func(ctx context.Context, actorID string, req leave.SubmitLeaveRequest) (leave.ApplicationResponse, error) {
			assert.Equal(t, facultyID, actorID)
			assert.Equal(t, "casual", req.LeaveType)
			return leave.ApplicationResponse{ID: uuid.New().String(), Status: "pending"}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", facultyID)
	body := `{"leave_type":"casual","leave_duration":"multiple","from_date":"2024-01-01","to_date":"2024-01-03"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"pending\"")
}

func TestHandler_Submit_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := leave.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"sabbatical"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveAndReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reviewerID := uuid.New().String()
	appID := uuid.New().String()

	svc := &fakeService{
		approveFn: func(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error) {
			assert.Equal(t, reviewerID, actorID)
			assert.Equal(t, "hod", role)
			assert.Equal(t, appID, id)
			return leave.ApplicationResponse{ID: id, Status: "approved"}, nil
		},
		rejectFn: func(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error) {
			return leave.ApplicationResponse{ID: id, Status: "rejected"}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", reviewerID)
	c.Set("role", "hod")
	c.Params = gin.Params{{Key: "id", Value: appID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+appID+"/approve", nil)
	h.Approve(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"approved\"")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("employee_id", reviewerID)
	c2.Set("role", "hod")
	c2.Params = gin.Params{{Key: "id", Value: appID}}
	c2.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+appID+"/reject", nil)
	h.Reject(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"rejected\"")
}

func TestHandler_Approve_WrongStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		approveFn: func(ctx context.Context, actorID, role, id string) (leave.ApplicationResponse, error) {
			return leave.ApplicationResponse{}, leaveerrors.ErrInvalidStatusTransition
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("role", "hr")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/x/approve", nil)
	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestHandler_GetReviewQueueAndMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	facultyID := uuid.New().String()

	svc := &fakeService{
		listPendingFn: func(ctx context.Context, role string) ([]leave.ApplicationResponse, error) {
			assert.Equal(t, "principal", role)
			return []leave.ApplicationResponse{{ID: uuid.New().String()}}, nil
		},
		listByFacultyFn: func(ctx context.Context, id string) ([]leave.ApplicationResponse, error) {
			assert.Equal(t, facultyID, id)
			return nil, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("role", "principal")
	c.Request = httptest.NewRequest(http.MethodGet, "/leaves/review-queue", nil)
	h.GetReviewQueue(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("employee_id", facultyID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/leaves/mine", nil)
	h.GetMine(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}
