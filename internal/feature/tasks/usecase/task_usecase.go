// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"todo_backend/internal/feature/tasks/domain/entity"
)

const (
	// MinPriority / MaxPriority は優先度の許容範囲です。0は「未設定」を意味します。
	MinPriority = 0
	MaxPriority = 5
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// すべての操作はオーナーIDでスコープされます。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TaskRepository interface {
	// ListByOwner は指定されたオーナーが所有するすべてのタスクを返します。
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error)

	// FindByIDAndOwner はIDとオーナーIDの両方に一致するタスクを取得します。
	// 一致しない場合（存在しない・他人所有の区別なく）、ErrTaskNotFoundを返します。
	FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*entity.Task, error)

	// Create は新しいタスクを永続化し、IDとCreatedAtを採番します。
	Create(ctx context.Context, task *entity.Task) error

	// Update はロード済みのタスクレコードを保存します。
	Update(ctx context.Context, task *entity.Task) error

	// Delete はIDとオーナーIDに一致するタスクを削除します。
	// 一致しない場合、ErrTaskNotFoundを返します。
	Delete(ctx context.Context, id uint, ownerID string) error
}

// TaskInput carries the client-settable task fields. These are the only
// fields an update may touch; id and owner never pass through this struct.
type TaskInput struct {
	Title       string
	Description string
	IsCompleted bool
	Category    string
	Tags        []string
	Priority    int
}

// taskUsecase はタスクの所有権ガードを実装します。
// すべての操作はトークン由来のオーナーIDを受け取り、それ以外の識別情報を信用しません。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// validateInput は必須フィールドと優先度の範囲を検証します。
func validateInput(in TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrCategoryRequired
	}
	if in.Priority < MinPriority || in.Priority > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

// List はオーナーが所有するすべてのタスクを返します。
// 全ユーザー横断の一覧操作は存在しません。
func (u *taskUsecase) List(ctx context.Context, ownerID string) ([]entity.Task, error) {
	return u.tasks.ListByOwner(ctx, ownerID)
}

// Get はオーナーが所有するタスクを1件返します。
// 他人のタスクは存在しないタスクと同じ結果（ErrTaskNotFound）になります。
func (u *taskUsecase) Get(ctx context.Context, id uint, ownerID string) (*entity.Task, error) {
	return u.tasks.FindByIDAndOwner(ctx, id, ownerID)
}

// Create は新しいタスクを作成します。オーナーは常に解決済みアイデンティティで、
// クライアントが指定したオーナーIDが使われることはありません。
func (u *taskUsecase) Create(ctx context.Context, ownerID string, in TaskInput) (*entity.Task, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		IsCompleted: in.IsCompleted,
		Category:    in.Category,
		Tags:        in.Tags,
		Priority:    in.Priority,
		UserID:      ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update は許可フィールドのみを所有タスクへ適用します。IDとオーナーIDは変更されません。
// 同一ペイロードの再適用は同じ保存状態と同じ成功結果を生みます（冪等）。
func (u *taskUsecase) Update(ctx context.Context, id uint, ownerID string, in TaskInput) (*entity.Task, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := u.tasks.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	// Update allowed fields
	existing.Title = in.Title
	existing.Description = in.Description
	existing.IsCompleted = in.IsCompleted
	existing.Category = in.Category
	existing.Tags = in.Tags
	existing.Priority = in.Priority

	if err := u.tasks.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetCompleted は所有タスクの完了状態を設定します。冪等です。
func (u *taskUsecase) SetCompleted(ctx context.Context, id uint, ownerID string, isCompleted bool) (*entity.Task, error) {
	existing, err := u.tasks.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	existing.IsCompleted = isCompleted
	if err := u.tasks.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete は所有タスクを削除します。他人のタスクはErrTaskNotFoundになります。
func (u *taskUsecase) Delete(ctx context.Context, id uint, ownerID string) error {
	return u.tasks.Delete(ctx, id, ownerID)
}
