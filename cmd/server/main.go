package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"wakeup_backend/internal/app/router"
	authadapters "wakeup_backend/internal/feature/auth/adapters"
	authhandler "wakeup_backend/internal/feature/auth/transport/handler"
	authusecase "wakeup_backend/internal/feature/auth/usecase"
	planadapters "wakeup_backend/internal/feature/plan/adapters"
	planhandler "wakeup_backend/internal/feature/plan/transport/handler"
	planusecase "wakeup_backend/internal/feature/plan/usecase"
	scheduleadapters "wakeup_backend/internal/feature/schedule/adapters"
	schedulehandler "wakeup_backend/internal/feature/schedule/transport/handler"
	scheduleusecase "wakeup_backend/internal/feature/schedule/usecase"
	"wakeup_backend/internal/platform/db"
	jwtgen "wakeup_backend/internal/platform/jwt"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	gormDB := db.OpenDB()

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtgen.NewGenerator(secret, 24*time.Hour)

	// Repository
	userRepo := authadapters.NewUserRepository(gormDB)
	planRepo := planadapters.NewPlanRepository(gormDB)
	scheduleRepo := scheduleadapters.NewScheduleRepository(gormDB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	planUC := planusecase.NewPlanUsecase(planRepo)
	// スケジュールはプランのステップ読み取りをplanリポジトリから注入する
	scheduleUC := scheduleusecase.NewScheduleUsecase(scheduleRepo, planRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	planH := planhandler.NewPlanHandler(planUC)
	scheduleH := schedulehandler.NewScheduleHandler(scheduleUC)

	// ルータ生成
	r := router.NewRouter(authH, planH, scheduleH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
