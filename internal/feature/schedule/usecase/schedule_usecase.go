// Package usecase はscheduleフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	planentity "wakeup_backend/internal/feature/plan/domain/entity"
	"wakeup_backend/internal/feature/schedule/domain"
	"wakeup_backend/internal/feature/schedule/domain/entity"
)

// ScheduleRepository はスケジュールエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ScheduleRepository interface {
	// Create は新しいスケジュールをストレージに永続化します。
	Create(ctx context.Context, schedule *entity.Schedule) error

	// FindByID はIDでスケジュールを取得します。
	FindByID(ctx context.Context, id uint) (*entity.Schedule, error)

	// ListByUserID は指定ユーザーのスケジュール一覧を取得します。
	ListByUserID(ctx context.Context, userID uint) ([]entity.Schedule, error)
}

// PlanStepReader はプランのステップ読み取りを抽象化します。
// planフィーチャーのリポジトリが実装を提供します。
type PlanStepReader interface {
	// FindStepsByPlanID はプランのステップをprocess_orderの降順で取得します。
	FindStepsByPlanID(ctx context.Context, planID uint) ([]planentity.Step, error)
}

// scheduleUsecase はスケジュール操作のビジネスロジックを実装します。
type scheduleUsecase struct {
	schedules ScheduleRepository
	planSteps PlanStepReader
}

// NewScheduleUsecase はscheduleUsecaseの新しいインスタンスを生成します。
func NewScheduleUsecase(schedules ScheduleRepository, planSteps PlanStepReader) *scheduleUsecase {
	return &scheduleUsecase{
		schedules: schedules,
		planSteps: planSteps,
	}
}

// Register は新しいスケジュールを登録します。
// プランのステップを取得し、出発時刻から起床時刻を導出して永続化します。
// 起床時刻は作成時点のステップに対して確定し、以後再計算されません。
// ステップが1件もない場合はErrNoStepsForPlanを返し、スケジュール行は作成しません。
func (u *scheduleUsecase) Register(ctx context.Context, userID, planID uint, date, departureTime string) (*entity.Schedule, error) {
	steps, err := u.planSteps.FindStepsByPlanID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, ErrNoStepsForPlan
	}

	wakeUpTime, err := domain.ComputeWakeUpTime(departureTime, steps)
	if err != nil {
		return nil, err
	}

	schedule := &entity.Schedule{
		UserID:        userID,
		PlanID:        planID,
		Date:          date,
		DepartureTime: departureTime,
		WakeUpTime:    wakeUpTime,
	}
	if err := u.schedules.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	// 挿入は成功したのに生成IDが返らないのは整合性異常として扱う
	if schedule.ID == 0 {
		return nil, ErrScheduleIDMissing
	}

	return schedule, nil
}

// GetTimes はスケジュールの出発時刻と起床時刻を取得します。
func (u *scheduleUsecase) GetTimes(ctx context.Context, scheduleID uint) (*entity.Schedule, error) {
	return u.schedules.FindByID(ctx, scheduleID)
}

// ListByUser は指定ユーザーのスケジュール一覧を取得します。
// 1件も存在しない場合はErrNoSchedulesForUserを返します。
func (u *scheduleUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Schedule, error) {
	schedules, err := u.schedules.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoSchedulesForUser
	}
	return schedules, nil
}
