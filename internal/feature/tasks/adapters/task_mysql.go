// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// taskMySQL はTaskRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type taskMySQL struct {
	db *gorm.DB
}

// taskMySQLがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskMySQL)(nil)

// NewTaskMySQL は指定されたgorm.DB接続でtaskMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTaskMySQL(db *gorm.DB) *taskMySQL {
	return &taskMySQL{db: db}
}

// ListByOwner はオーナーIDに一致するすべてのタスクを返します。
// 並び順は保証されません。
func (r *taskMySQL) ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByIDAndOwner はIDとオーナーIDの両方に一致するタスクを取得します。
// 存在しない場合も他人所有の場合も、同じくusecase.ErrTaskNotFoundを返します。
func (r *taskMySQL) FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create はタスクをデータベースに追加します。IDとCreatedAtが採番されます。
func (r *taskMySQL) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update はロード済みのタスクレコードを保存します。
// 呼び出し元はFindByIDAndOwnerで取得したレコードを渡すため、
// 主キーとオーナーIDのスコープは既に保証されています。
func (r *taskMySQL) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete はIDとオーナーIDに一致するタスクを1件削除します。
// 一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskMySQL) Delete(ctx context.Context, id uint, ownerID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
