// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wakeup_backend/internal/feature/auth/domain/entity"
	"wakeup_backend/internal/feature/auth/usecase"
)

// userPostgres はUserRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じユーザー名のユーザーが既に存在する場合、usecase.ErrUserAlreadyExistsを返します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	// ユニーク制約違反を待たずに事前チェックする（登録時の重複はエラーではなく通常系）
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("user_name = ?", u.UserName).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrUserAlreadyExists
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// 同時登録でユニーク制約に当たった場合も同じエラーに正規化する
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByName はユーザー名でユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByName(ctx context.Context, userName string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
