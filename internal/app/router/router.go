package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	"todo_backend/internal/platform/auth"
	platformhandler "todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/requestid"
)

func NewRouter(verifier auth.TokenVerifier, frontendOrigin string,
	users *userhandler.UserHandler, tasks *taskhandler.TaskHandler) *gin.Engine {
	r := gin.Default()

	r.Use(requestid.New())

	// CORS: フロントエンド（Next.js）からの呼び出しのみ許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestid.Header},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 認証必須のルート
	// auth.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに検証済みIDトークンが必要になる
	api := r.Group("/api")
	api.Use(auth.AuthRequired(verifier))
	{
		// ユーザープロフィール登録（初回サインイン時）
		api.POST("/users", users.Register)
		api.GET("/users/me", users.Me)
		api.DELETE("/users/me", users.Delete)

		// タスクCRUD（すべてオーナースコープ）
		api.GET("/tasks", tasks.List)
		api.GET("/tasks/:id", tasks.Get)
		api.POST("/tasks", tasks.Create)
		api.PUT("/tasks/:id", tasks.Update)
		api.PATCH("/tasks/:id/complete", tasks.Complete)
		api.DELETE("/tasks/:id", tasks.Delete)
	}

	return r
}
