package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/platform/auth"
)

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	RegisterIfAbsentFunc func(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error)
	ProfileFunc          func(ctx context.Context, userID string) (*entity.User, error)
	DeregisterFunc       func(ctx context.Context, userID string) error
}

func (m *mockUserUsecase) RegisterIfAbsent(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error) {
	if m.RegisterIfAbsentFunc != nil {
		return m.RegisterIfAbsentFunc(ctx, userID, in)
	}
	return nil, errors.New("unexpected call")
}

func (m *mockUserUsecase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserUsecase) Deregister(ctx context.Context, userID string) error {
	if m.DeregisterFunc != nil {
		return m.DeregisterFunc(ctx, userID)
	}
	return usecase.ErrUserNotFound
}

func setupRouter(uc UserUsecase, identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(uc)

	r := gin.New()
	if identity != "" {
		r.Use(func(c *gin.Context) { c.Set(auth.ContextUserID, identity) })
	}
	r.POST("/api/users", h.Register)
	r.GET("/api/users/me", h.Me)
	r.DELETE("/api/users/me", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "failed to encode request body")
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err, "failed to build request")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("success keys the profile by the token identity", func(t *testing.T) {
		var gotUserID string
		uc := &mockUserUsecase{
			RegisterIfAbsentFunc: func(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error) {
				gotUserID = userID
				return &entity.User{
					UserID:    userID,
					FirstName: in.FirstName,
					LastName:  in.LastName,
					Email:     in.Email,
				}, nil
			},
		}
		r := setupRouter(uc, "u1")

		w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
			"firstName": "Taro",
			"lastName":  "Yamada",
			"email":     "taro@example.com",
			"userId":    "attacker", // must never become the key
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "u1", gotUserID, "usecase must receive the token identity")

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "u1", body["userId"])
		assert.Equal(t, "Taro", body["firstName"])
	})

	t.Run("duplicate registration returns 409", func(t *testing.T) {
		uc := &mockUserUsecase{
			RegisterIfAbsentFunc: func(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error) {
				return nil, usecase.ErrUserAlreadyExists
			},
		}
		r := setupRouter(uc, "u1")

		w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
			"firstName": "Taro",
			"lastName":  "Yamada",
			"email":     "taro@example.com",
		})

		assert.Equal(t, http.StatusConflict, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "user already exists", body["error"])
	})

	t.Run("binding failures return 400", func(t *testing.T) {
		tests := []struct {
			name string
			body gin.H
		}{
			{"missing first name", gin.H{"lastName": "Yamada", "email": "taro@example.com"}},
			{"missing last name", gin.H{"firstName": "Taro", "email": "taro@example.com"}},
			{"missing email", gin.H{"firstName": "Taro", "lastName": "Yamada"}},
			{"malformed email", gin.H{"firstName": "Taro", "lastName": "Yamada", "email": "not-an-email"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				called := false
				uc := &mockUserUsecase{
					RegisterIfAbsentFunc: func(ctx context.Context, userID string, in usecase.Registration) (*entity.User, error) {
						called = true
						return nil, nil
					},
				}
				r := setupRouter(uc, "u1")

				w := doJSON(t, r, http.MethodPost, "/api/users", tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.False(t, called, "invalid payload must not reach the usecase")
			})
		}
	})

	t.Run("no identity returns 401", func(t *testing.T) {
		r := setupRouter(&mockUserUsecase{}, "")

		w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
			"firstName": "Taro",
			"lastName":  "Yamada",
			"email":     "taro@example.com",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("returns the caller's profile", func(t *testing.T) {
		uc := &mockUserUsecase{
			ProfileFunc: func(ctx context.Context, userID string) (*entity.User, error) {
				assert.Equal(t, "u1", userID)
				return &entity.User{UserID: userID, FirstName: "Taro", LastName: "Yamada", Email: "taro@example.com"}, nil
			},
		}
		r := setupRouter(uc, "u1")

		w := doJSON(t, r, http.MethodGet, "/api/users/me", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "taro@example.com", body["email"])
	})

	t.Run("unregistered identity returns 404", func(t *testing.T) {
		r := setupRouter(&mockUserUsecase{}, "u1")

		w := doJSON(t, r, http.MethodGet, "/api/users/me", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "user not found", body["error"])
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		uc := &mockUserUsecase{
			DeregisterFunc: func(ctx context.Context, userID string) error {
				assert.Equal(t, "u1", userID)
				return nil
			},
		}
		r := setupRouter(uc, "u1")

		w := doJSON(t, r, http.MethodDelete, "/api/users/me", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String(), "no body expected on delete")
	})

	t.Run("unregistered identity returns 404", func(t *testing.T) {
		r := setupRouter(&mockUserUsecase{}, "u1")

		w := doJSON(t, r, http.MethodDelete, "/api/users/me", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		uc := &mockUserUsecase{
			DeregisterFunc: func(ctx context.Context, userID string) error {
				return errors.New("connection reset")
			},
		}
		r := setupRouter(uc, "u1")

		w := doJSON(t, r, http.MethodDelete, "/api/users/me", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body["error"], "raw storage errors must not leak")
	})
}
