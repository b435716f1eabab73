package router

import (
	authhandler "wakeup_backend/internal/feature/auth/transport/handler"
	planhandler "wakeup_backend/internal/feature/plan/transport/handler"
	schedulehandler "wakeup_backend/internal/feature/schedule/transport/handler"
	"wakeup_backend/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, plan *planhandler.PlanHandler,
	schedule *schedulehandler.ScheduleHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドから直接叩くAPIのため、全オリジンを許可する
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// ユーザー登録・認証
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/users/:user_name", authHandler.GetUser)

	// プラン
	r.POST("/plans", plan.Create)
	r.GET("/plans/:plan_id", plan.Detail)
	r.GET("/user/:user_id/plans", plan.ListByUser)

	// スケジュール
	r.POST("/register_schedule", schedule.Register)
	r.GET("/schedule/:schedule_id/times", schedule.Times)
	r.GET("/schedules/user/:user_id", schedule.ListByUser)

	return r
}
