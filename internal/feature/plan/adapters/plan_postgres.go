// Package adapters はplanフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wakeup_backend/internal/feature/plan/domain/entity"
	"wakeup_backend/internal/feature/plan/usecase"
)

// planPostgres はPlanRepositoryインターフェースのPostgres実装です。
type planPostgres struct {
	db *gorm.DB
}

var _ usecase.PlanRepository = (*planPostgres)(nil)

// NewPlanRepository は指定されたDB接続でplanPostgresリポジトリの新しいインスタンスを生成します。
func NewPlanRepository(db *gorm.DB) *planPostgres {
	return &planPostgres{db: db}
}

// CreateWithSteps はプラン行とステップ行を単一トランザクションで挿入します。
// プラン挿入で得た生成IDを各ステップに付与してから挿入するため、
// いずれかの挿入が失敗した場合は全体がロールバックされます。
func (r *planPostgres) CreateWithSteps(ctx context.Context, plan *entity.Plan, steps []entity.Step) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].PlanID = plan.ID
			if err := tx.Create(&steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID はIDでプランを取得します。
// プランが存在しない場合、usecase.ErrPlanNotFoundを返します。
func (r *planPostgres) FindByID(ctx context.Context, id uint) (*entity.Plan, error) {
	var p entity.Plan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlanNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindStepsByPlanID はプランのステップをprocess_orderの降順で返します。
// ステップが存在しない場合は空のスライスを返します（エラーにはしません）。
func (r *planPostgres) FindStepsByPlanID(ctx context.Context, planID uint) ([]entity.Step, error) {
	var steps []entity.Step
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("process_order DESC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ListByUserID は指定ユーザーのプランをID順で返します。
func (r *planPostgres) ListByUserID(ctx context.Context, userID uint) ([]entity.Plan, error) {
	var plans []entity.Plan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
