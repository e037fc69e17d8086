package main

import (
	"context"
	"log"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	"todo_backend/internal/config"
	taskadapters "todo_backend/internal/feature/tasks/adapters"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	taskusecase "todo_backend/internal/feature/tasks/usecase"
	useradapters "todo_backend/internal/feature/users/adapters"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	userusecase "todo_backend/internal/feature/users/usecase"
	infradb "todo_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB()

	// IDトークン検証（Firebase、未設定時は開発用HS256にフォールバック）
	verifier, err := di.NewTokenVerifier(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := useradapters.NewUserMySQL(db)
	taskRepo := taskadapters.NewTaskMySQL(db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成
	router := router.NewRouter(verifier, cfg.FrontendOrigin, userH, taskH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
