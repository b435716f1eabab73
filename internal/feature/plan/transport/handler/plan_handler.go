// Package handler はplanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wakeup_backend/internal/feature/plan/domain/entity"
	"wakeup_backend/internal/feature/plan/transport/http/dto"
	"wakeup_backend/internal/feature/plan/usecase"
)

// PlanUsecase はプラン操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PlanUsecase interface {
	// CreatePlan は新しいプランとステップを作成します。
	CreatePlan(ctx context.Context, userID uint, planName string, specs []usecase.StepSpec) (*entity.Plan, []entity.Step, error)
	// GetPlan はプランとそのステップ（process_order降順）を取得します。
	GetPlan(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error)
	// ListPlansByUser は指定ユーザーのプラン一覧を取得します。
	ListPlansByUser(ctx context.Context, userID uint) ([]entity.Plan, error)
}

// PlanHandler はプラン操作のHTTPリクエストを処理します。
type PlanHandler struct {
	plans PlanUsecase
}

// NewPlanHandler はPlanHandlerの新しいインスタンスを生成します。
func NewPlanHandler(plans PlanUsecase) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// Create はプラン作成APIエンドポイントを処理します。
// - リクエストJSONをCreatePlanReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時はメッセージと生成されたplan_idを返却
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create plan validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	specs := make([]usecase.StepSpec, 0, len(req.Steps))
	for _, s := range req.Steps {
		specs = append(specs, usecase.StepSpec{StepName: s.StepName, StepTime: s.StepTime})
	}

	plan, steps, err := h.plans.CreatePlan(c.Request.Context(), req.UserID, req.PlanName, specs)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanNameRequired), errors.Is(err, usecase.ErrInvalidStepTime):
			slog.Warn("create plan rejected", "error", err, "user_id", req.UserID)
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			slog.Error("create plan failed", "error", err, "user_id", req.UserID)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error: " + err.Error()})
		}
		return
	}

	slog.Info("plan created", "plan_id", plan.ID, "user_id", plan.UserID, "steps", len(steps))
	c.JSON(http.StatusOK, dto.CreatePlanResp{
		Message: "Plan created successfully",
		PlanID:  plan.ID,
	})
}

// Detail はプラン詳細取得APIエンドポイントを処理します。
// ステップはprocess_orderの降順で返します（既存クライアントとの互換契約）。
// ステップを持たないプランは空のprocesses配列を返します。
func (h *PlanHandler) Detail(c *gin.Context) {
	planID, err := parseID(c.Param("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid plan id"})
		return
	}

	plan, steps, err := h.plans.GetPlan(c.Request.Context(), planID)
	if err != nil {
		if errors.Is(err, usecase.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Plan not found"})
			return
		}
		slog.Error("get plan failed", "error", err, "plan_id", planID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error: " + err.Error()})
		return
	}

	processes := make([]dto.ProcessItem, 0, len(steps))
	for _, s := range steps {
		processes = append(processes, dto.ProcessItem{
			StepName:     s.StepName,
			StepTime:     s.StepTime,
			ProcessOrder: s.ProcessOrder,
		})
	}
	c.JSON(http.StatusOK, dto.PlanDetailResp{
		PlanID:    plan.ID,
		PlanName:  plan.PlanName,
		Processes: processes,
	})
}

// ListByUser はユーザーのプラン一覧取得APIエンドポイントを処理します。
// プランが1件も存在しない場合は404を返します。
func (h *PlanHandler) ListByUser(c *gin.Context) {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user id"})
		return
	}

	plans, err := h.plans.ListPlansByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoPlansForUser) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "No plans found for user"})
			return
		}
		slog.Error("list plans failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	out := make([]dto.PlanListItem, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanListItem{PlanID: p.ID, PlanName: p.PlanName})
	}
	c.JSON(http.StatusOK, out)
}

// parseID はパスパラメータの数値IDをパースします。
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
