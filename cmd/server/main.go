package main

import (
	"log"
	"os"

	"github.com/AnaNobrega24/dfs-2025.2/internal/app/router"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/adapters"
	usuarioshandler "github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/transport/handler"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/usecase"
	infradb "github.com/AnaNobrega24/dfs-2025.2/internal/platform/db"
	"github.com/AnaNobrega24/dfs-2025.2/internal/platform/storage"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Upload store
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	avatars := storage.NewLocalStorage(uploadDir)

	// Repository
	usuarioRepo := adapters.NewUsuarioRepository(db)

	// Usecase
	usuariosUC := usecase.NewUsuarioUsecase(usuarioRepo, avatars)

	// Handler
	usuariosH := usuarioshandler.NewUsuarioHandler(usuariosUC)

	// Router
	router := router.NewRouter(usuariosH, avatars.Dir())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
