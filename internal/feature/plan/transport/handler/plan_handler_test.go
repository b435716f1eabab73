package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wakeup_backend/internal/feature/plan/domain/entity"
	"wakeup_backend/internal/feature/plan/usecase"
)

// mockPlanUsecase はPlanUsecaseインターフェースのモック実装です。
type mockPlanUsecase struct {
	CreatePlanFunc      func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error)
	GetPlanFunc         func(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error)
	ListPlansByUserFunc func(ctx context.Context, userID uint) ([]entity.Plan, error)
}

func (m *mockPlanUsecase) CreatePlan(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error) {
	if m.CreatePlanFunc != nil {
		return m.CreatePlanFunc(ctx, userID, planName, specs)
	}
	return &entity.Plan{ID: 1, UserID: userID, PlanName: planName}, nil, nil
}

func (m *mockPlanUsecase) GetPlan(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error) {
	if m.GetPlanFunc != nil {
		return m.GetPlanFunc(ctx, planID)
	}
	return nil, nil, usecase.ErrPlanNotFound
}

func (m *mockPlanUsecase) ListPlansByUser(ctx context.Context, userID uint) ([]entity.Plan, error) {
	if m.ListPlansByUserFunc != nil {
		return m.ListPlansByUserFunc(ctx, userID)
	}
	return nil, usecase.ErrNoPlansForUser
}

func setupRouter(mockUC *mockPlanUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPlanHandler(mockUC)
	r := gin.New()
	r.POST("/plans", h.Create)
	r.GET("/plans/:plan_id", h.Detail)
	r.GET("/user/:user_id/plans", h.ListByUser)
	return r
}

func TestPlanHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockCreateFunc func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: plan created with generated id",
			body: `{"user_id":1,"plan_name":"Morning","steps":[{"step_name":"Shower","step_time":10},{"step_name":"Dress","step_time":5}]}`,
			mockCreateFunc: func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error) {
				return &entity.Plan{ID: 7, UserID: userID, PlanName: planName}, []entity.Step{
					{ProcessOrder: 1}, {ProcessOrder: 2},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Plan created successfully","plan_id":7}`,
		},
		{
			name:           "failure: missing plan_name is rejected by binding",
			body:           `{"user_id":1,"steps":[{"step_name":"Shower","step_time":10}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid request"}`,
		},
		{
			name:           "failure: malformed JSON",
			body:           `{"user_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid request"}`,
		},
		{
			name: "failure: negative step duration",
			body: `{"user_id":1,"plan_name":"Morning","steps":[{"step_name":"Shower","step_time":-10}]}`,
			mockCreateFunc: func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error) {
				return nil, nil, usecase.ErrInvalidStepTime
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid step duration"}`,
		},
		{
			name: "failure: store error surfaces detail",
			body: `{"user_id":1,"plan_name":"Morning","steps":[{"step_name":"Shower","step_time":10}]}`,
			mockCreateFunc: func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error) {
				return nil, nil, errors.New("insert failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Internal Server Error: insert failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockPlanUsecase{CreatePlanFunc: tt.mockCreateFunc})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/plans", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestPlanHandler_Create_OrderAssignment はステップが入力順のままユースケースに渡されることを検証します。
func TestPlanHandler_Create_OrderAssignment(t *testing.T) {
	var captured []usecase.StepSpec
	mockUC := &mockPlanUsecase{
		CreatePlanFunc: func(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error) {
			captured = specs
			return &entity.Plan{ID: 1}, nil, nil
		},
	}
	router := setupRouter(mockUC)

	body := `{"user_id":1,"plan_name":"Morning","steps":[{"step_name":"Shower","step_time":10},{"step_name":"Dress","step_time":5}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []usecase.StepSpec{
		{StepName: "Shower", StepTime: 10},
		{StepName: "Dress", StepTime: 5},
	}, captured)
}

func TestPlanHandler_Detail(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockGetFunc    func(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: processes ordered descending",
			path: "/plans/3",
			mockGetFunc: func(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error) {
				return &entity.Plan{ID: planID, PlanName: "Morning"}, []entity.Step{
					{StepName: "Dress", StepTime: 5, ProcessOrder: 2},
					{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"plan_id":3,"plan_name":"Morning","processes":[{"step_name":"Dress","step_time":5,"process_order":2},{"step_name":"Shower","step_time":10,"process_order":1}]}`,
		},
		{
			name: "success: step-less plan returns empty processes",
			path: "/plans/4",
			mockGetFunc: func(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error) {
				return &entity.Plan{ID: planID, PlanName: "Empty"}, []entity.Step{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"plan_id":4,"plan_name":"Empty","processes":[]}`,
		},
		{
			name:           "failure: plan not found",
			path:           "/plans/999",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Plan not found"}`,
		},
		{
			name:           "failure: non-numeric plan id",
			path:           "/plans/abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid plan id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockPlanUsecase{GetPlanFunc: tt.mockGetFunc})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestPlanHandler_ListByUser(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockListFunc   func(ctx context.Context, userID uint) ([]entity.Plan, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns plan list",
			path: "/user/1/plans",
			mockListFunc: func(ctx context.Context, userID uint) ([]entity.Plan, error) {
				return []entity.Plan{
					{ID: 1, UserID: userID, PlanName: "Morning"},
					{ID: 2, UserID: userID, PlanName: "Workday"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"plan_id":1,"plan_name":"Morning"},{"plan_id":2,"plan_name":"Workday"}]`,
		},
		{
			name:           "failure: no plans for user",
			path:           "/user/1/plans",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"No plans found for user"}`,
		},
		{
			name:           "failure: non-numeric user id",
			path:           "/user/abc/plans",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid user id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockPlanUsecase{ListPlansByUserFunc: tt.mockListFunc})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
