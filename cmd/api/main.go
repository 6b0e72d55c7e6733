package main

import (
	"fmt"
	"log"
	"net/http"

	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, cleanup := app.App(cfg)
	defer db.CloseDB()
	defer cleanup()

	handler := handlers.NewHandlers(repo, services, db, cfg)
	router := app.NewRouter(handler, services.Auth)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)
	log.Printf("Постов на странице: %d", cfg.PostsPerPage)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
