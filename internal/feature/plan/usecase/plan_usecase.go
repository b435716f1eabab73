// Package usecase はplanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"wakeup_backend/internal/feature/plan/domain/entity"
)

// StepSpec はプラン作成時に受け取る1ステップ分の入力です。
// 並び順はコア側で入力順から採番するため、呼び出し側は指定しません。
type StepSpec struct {
	StepName string
	StepTime int
}

// PlanRepository はプランとステップの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PlanRepository interface {
	// CreateWithSteps はプランとそのステップを単一トランザクションで永続化します。
	// プラン行の生成IDを各ステップに付与してから挿入します。
	CreateWithSteps(ctx context.Context, plan *entity.Plan, steps []entity.Step) error

	// FindByID はIDでプランを取得します。
	// プランが存在しない場合、エラーを返します。
	FindByID(ctx context.Context, id uint) (*entity.Plan, error)

	// FindStepsByPlanID はプランのステップをprocess_orderの降順で取得します。
	// ステップが存在しない場合は空のスライスを返します。
	FindStepsByPlanID(ctx context.Context, planID uint) ([]entity.Step, error)

	// ListByUserID は指定ユーザーのプラン一覧を取得します。
	ListByUserID(ctx context.Context, userID uint) ([]entity.Plan, error)
}

// planUsecase はプラン操作のビジネスロジックを実装します。
type planUsecase struct {
	plans PlanRepository
}

// NewPlanUsecase はplanUsecaseの新しいインスタンスを生成します。
func NewPlanUsecase(plans PlanRepository) *planUsecase {
	return &planUsecase{plans: plans}
}

// CreatePlan は新しいプランとステップを作成します。
// process_orderは入力順に1から採番します（1 = 起床後に最初に行うステップ）。
// プラン名が空の場合はErrPlanNameRequired、負の所要時間を含む場合はErrInvalidStepTimeを返します。
func (u *planUsecase) CreatePlan(ctx context.Context, userID uint, planName string, specs []StepSpec) (*entity.Plan, []entity.Step, error) {
	if strings.TrimSpace(planName) == "" {
		return nil, nil, ErrPlanNameRequired
	}
	for _, s := range specs {
		if s.StepTime < 0 {
			return nil, nil, ErrInvalidStepTime
		}
	}

	plan := &entity.Plan{UserID: userID, PlanName: planName}
	steps := make([]entity.Step, 0, len(specs))
	for i, s := range specs {
		steps = append(steps, entity.Step{
			StepName:     s.StepName,
			StepTime:     s.StepTime,
			ProcessOrder: i + 1,
		})
	}

	if err := u.plans.CreateWithSteps(ctx, plan, steps); err != nil {
		return nil, nil, err
	}
	return plan, steps, nil
}

// GetPlan はプランとそのステップ（process_order降順）を取得します。
// ステップを持たないプランはエラーではなく空のステップ一覧を返します。
func (u *planUsecase) GetPlan(ctx context.Context, planID uint) (*entity.Plan, []entity.Step, error) {
	plan, err := u.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	steps, err := u.plans.FindStepsByPlanID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	return plan, steps, nil
}

// ListPlansByUser は指定ユーザーのプラン一覧を取得します。
// 1件も存在しない場合はErrNoPlansForUserを返します。
func (u *planUsecase) ListPlansByUser(ctx context.Context, userID uint) ([]entity.Plan, error) {
	plans, err := u.plans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrNoPlansForUser
	}
	return plans, nil
}
