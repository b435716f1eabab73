// Package adapters はscheduleフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wakeup_backend/internal/feature/schedule/domain/entity"
	"wakeup_backend/internal/feature/schedule/usecase"
)

// schedulePostgres はScheduleRepositoryインターフェースのPostgres実装です。
type schedulePostgres struct {
	db *gorm.DB
}

var _ usecase.ScheduleRepository = (*schedulePostgres)(nil)

// NewScheduleRepository は指定されたDB接続でschedulePostgresリポジトリの新しいインスタンスを生成します。
func NewScheduleRepository(db *gorm.DB) *schedulePostgres {
	return &schedulePostgres{db: db}
}

// Create はスケジュールをデータベースに追加します。
// 生成されたIDは渡されたエンティティに書き戻されます。
func (r *schedulePostgres) Create(ctx context.Context, s *entity.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindByID はIDでスケジュールを取得します。
// スケジュールが存在しない場合、usecase.ErrScheduleNotFoundを返します。
func (r *schedulePostgres) FindByID(ctx context.Context, id uint) (*entity.Schedule, error) {
	var s entity.Schedule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrScheduleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByUserID は指定ユーザーのスケジュールをID順で返します。
func (r *schedulePostgres) ListByUserID(ctx context.Context, userID uint) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
