// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/transport/http/dto"
	"todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/platform/auth"
	"todo_backend/internal/platform/requestid"
)

// UserUsecase はユーザーレジストリのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	RegisterIfAbsent(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error)
	Profile(ctx context.Context, userID string) (*entity.User, error)
	Deregister(ctx context.Context, userID string) error
}

// UserHandler はユーザープロフィール操作のHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// toResponse はエンティティをレスポンスDTOに変換します。
func toResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// owner は認証ミドルウェアが設定したアイデンティティを取り出します。
func owner(c *gin.Context) (string, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
	}
	return userID, ok
}

// Register はユーザープロフィール登録APIエンドポイントを処理します。
// - リクエストJSONをUserReqにバインド
// - バリデーションエラー時は400を返却
// - 既に登録済みの場合は409を返却（クライアントは「登録済み」として扱う）
// - 成功時は201と作成されたプロフィールを返却
func (h *UserHandler) Register(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var req dto.UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.uc.RegisterIfAbsent(c.Request.Context(), userID, usecase.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "user already exists"})
			return
		}
		slog.Error("user registration failed", "error", err, "request_id", requestid.FromContext(c))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user registered", "user_id", user.UserID)
	c.JSON(http.StatusCreated, toResponse(user))
}

// Me は認証済みユーザー自身のプロフィールを返します。
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	user, err := h.uc.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "request_id", requestid.FromContext(c))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toResponse(user))
}

// Delete は認証済みユーザー自身のプロフィールと所有タスクを削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	if err := h.uc.Deregister(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("user deletion failed", "error", err, "request_id", requestid.FromContext(c))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user deregistered", "user_id", userID)
	c.Status(http.StatusNoContent)
}
