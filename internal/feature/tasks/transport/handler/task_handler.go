// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/transport/http/dto"
	"todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/auth"
	"todo_backend/internal/platform/requestid"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	List(ctx context.Context, ownerID string) ([]entity.Task, error)
	Get(ctx context.Context, id uint, ownerID string) (*entity.Task, error)
	Create(ctx context.Context, ownerID string, in usecase.TaskInput) (*entity.Task, error)
	Update(ctx context.Context, id uint, ownerID string, in usecase.TaskInput) (*entity.Task, error)
	SetCompleted(ctx context.Context, id uint, ownerID string, isCompleted bool) (*entity.Task, error)
	Delete(ctx context.Context, id uint, ownerID string) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
// 認証ミドルウェアが解決したアイデンティティのみを信用します。
type TaskHandler struct {
	uc TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からTaskUsecaseを注入します。
func NewTaskHandler(uc TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// owner は認証ミドルウェアが設定したアイデンティティを取り出します。
// 未設定の場合は401を返してリクエストを中断します。
func owner(c *gin.Context) (string, bool) {
	ownerID, ok := auth.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
	}
	return ownerID, ok
}

// taskID はパスパラメータ:idを解析します。
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid task id"})
		return 0, false
	}
	return uint(id), true
}

// toResponse はエンティティをレスポンスDTOに変換します。
func toResponse(t *entity.Task) api.TaskResponse {
	return api.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Category:    t.Category,
		Tags:        t.Tags,
		Priority:    t.Priority,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toInput はリクエストDTOをユースケース入力に変換します。
// DTOのUserIDはここで意図的に捨てられます。
func toInput(req dto.TaskReq) usecase.TaskInput {
	return usecase.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Category:    req.Category,
		Tags:        req.Tags,
		Priority:    req.Priority,
	}
}

// renderError はユースケースのエラーをHTTPステータスに対応付けます。
// 生のストレージエラーはレスポンスに含めず、ログにのみ残します。
func renderError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "task not found"})
	case errors.Is(err, usecase.ErrTitleRequired),
		errors.Is(err, usecase.ErrCategoryRequired),
		errors.Is(err, usecase.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("task operation failed", "op", op, "error", err, "request_id", requestid.FromContext(c))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// List は認証済みユーザーのタスク一覧を返します。
// クエリは常に解決済みアイデンティティで事前フィルタされます。
func (h *TaskHandler) List(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	tasks, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		renderError(c, "list", err)
		return
	}

	out := make([]api.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は所有タスクを1件返します。他人のタスクは404になります。
func (h *TaskHandler) Get(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.uc.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		renderError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(task))
}

// Create は新しいタスクを作成します。
// - リクエストJSONをTaskReqにバインド
// - バリデーションエラー時は400を返却
// - オーナーはトークン由来のアイデンティティで強制上書き
// - 成功時は201と保存済みレコードを返却
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	var req dto.TaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.uc.Create(c.Request.Context(), ownerID, toInput(req))
	if err != nil {
		renderError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(task))
}

// Update は所有タスクの許可フィールドを更新します。冪等です。
func (h *TaskHandler) Update(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.TaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.uc.Update(c.Request.Context(), id, ownerID, toInput(req))
	if err != nil {
		renderError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(task))
}

// Complete は所有タスクの完了状態を設定します。
//
// エンドポイント例:
// PATCH /api/tasks/:id/complete {"isCompleted": true}
func (h *TaskHandler) Complete(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.CompleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.uc.SetCompleted(c.Request.Context(), id, ownerID, *req.IsCompleted)
	if err != nil {
		renderError(c, "complete", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(task))
}

// Delete は所有タスクを削除します。他人のタスクは404になります。
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, ownerID); err != nil {
		renderError(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
