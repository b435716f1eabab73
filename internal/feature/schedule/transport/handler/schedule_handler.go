// Package handler はscheduleフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wakeup_backend/internal/feature/schedule/domain"
	"wakeup_backend/internal/feature/schedule/domain/entity"
	"wakeup_backend/internal/feature/schedule/transport/http/dto"
	"wakeup_backend/internal/feature/schedule/usecase"
)

// ScheduleUsecase はスケジュール操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ScheduleUsecase interface {
	// Register は新しいスケジュールを登録し、起床時刻を導出して永続化します。
	Register(ctx context.Context, userID, planID uint, date, departureTime string) (*entity.Schedule, error)
	// GetTimes はスケジュールの出発時刻と起床時刻を取得します。
	GetTimes(ctx context.Context, scheduleID uint) (*entity.Schedule, error)
	// ListByUser は指定ユーザーのスケジュール一覧を取得します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Schedule, error)
}

// ScheduleHandler はスケジュール操作のHTTPリクエストを処理します。
type ScheduleHandler struct {
	schedules ScheduleUsecase
}

// NewScheduleHandler はScheduleHandlerの新しいインスタンスを生成します。
func NewScheduleHandler(schedules ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// Register はスケジュール登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterScheduleReqにバインド
// - バリデーションエラー・時刻フォーマット不正時は400を返却
// - プランにステップがない場合は404を返却（スケジュールは作成しない）
// - 成功時は生成されたschedule_idを返却
func (h *ScheduleHandler) Register(c *gin.Context) {
	var req dto.RegisterScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register schedule validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	schedule, err := h.schedules.Register(c.Request.Context(), req.UserID, req.PlanID, req.Date, req.DepartureTime)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoStepsForPlan):
			slog.Warn("register schedule rejected", "error", err, "plan_id", req.PlanID)
			c.JSON(http.StatusNotFound, gin.H{"detail": "No steps found for the given plan_id"})
		case errors.Is(err, domain.ErrInvalidTimeFormat):
			slog.Warn("register schedule rejected", "error", err, "plan_id", req.PlanID)
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		case errors.Is(err, usecase.ErrScheduleIDMissing):
			slog.Error("schedule id missing after insert", "plan_id", req.PlanID, "user_id", req.UserID)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve schedule ID"})
		default:
			slog.Error("register schedule failed", "error", err, "plan_id", req.PlanID, "user_id", req.UserID)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to register schedule"})
		}
		return
	}

	slog.Info("schedule registered",
		"schedule_id", schedule.ID, "plan_id", schedule.PlanID,
		"user_id", schedule.UserID, "wake_up_time", schedule.WakeUpTime)
	c.JSON(http.StatusOK, dto.RegisterScheduleResp{
		ScheduleID: strconv.FormatUint(uint64(schedule.ID), 10),
	})
}

// Times はスケジュールの出発時刻・起床時刻取得APIエンドポイントを処理します。
func (h *ScheduleHandler) Times(c *gin.Context) {
	scheduleID, err := parseID(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid schedule id"})
		return
	}

	schedule, err := h.schedules.GetTimes(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Schedule not found"})
			return
		}
		slog.Error("get schedule times failed", "error", err, "schedule_id", scheduleID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.ScheduleTimesResp{
		DepartureTime: schedule.DepartureTime,
		WakeUpTime:    schedule.WakeUpTime,
	})
}

// ListByUser はユーザーのスケジュール一覧取得APIエンドポイントを処理します。
// スケジュールが1件も存在しない場合は404を返します。
func (h *ScheduleHandler) ListByUser(c *gin.Context) {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user id"})
		return
	}

	schedules, err := h.schedules.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoSchedulesForUser) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Schedules not found for user"})
			return
		}
		slog.Error("list schedules failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	out := make([]dto.ScheduleItem, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, dto.ScheduleItem{
			ScheduleID:    s.ID,
			UserID:        s.UserID,
			PlanID:        s.PlanID,
			Date:          s.Date,
			DepartureTime: s.DepartureTime,
			WakeUpTime:    s.WakeUpTime,
		})
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
