// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザープロフィールの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいプロフィールを永続化します。
	// 同じUserIDが既に存在する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByID はUserIDでプロフィールを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// Delete はプロフィールと所有タスクをまとめて削除します。
	// 存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, userID string) error
}

// Registration carries the profile fields supplied at first sign-in.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
}

// userUsecase はユーザーレジストリを実装します。
// プロフィールは外部アイデンティティごとに厳密に1回だけ作成されます。
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// RegisterIfAbsent は検証済みアイデンティティのプロフィールを作成します。
// UserIDはトークン由来の値のみを受け付けます。重複時は既存プロフィールを
// 変更せずにErrUserAlreadyExistsを返します（主キー制約によりアトミック）。
func (u *userUsecase) RegisterIfAbsent(ctx context.Context, userID string, in Registration) (*entity.User, error) {
	user := &entity.User{
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Profile は検証済みアイデンティティのプロフィールを返します。
func (u *userUsecase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// Deregister はプロフィールと所有するすべてのタスクを削除します。
func (u *userUsecase) Deregister(ctx context.Context, userID string) error {
	return u.users.Delete(ctx, userID)
}
