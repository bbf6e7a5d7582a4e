// Package router assembles the gin engine and route table of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	usuarioshandler "github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/transport/handler"
	platformhandler "github.com/AnaNobrega24/dfs-2025.2/internal/platform/http/handler"
)

// NewRouter builds the HTTP route table.
// uploadDir is served read-only under /uploads so stored avatars are
// reachable by filename.
func NewRouter(usuarios *usuarioshandler.UsuarioHandler, uploadDir string) *gin.Engine {
	r := gin.Default()

	// The browser client is served from another origin.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/", platformhandler.Liveness)

	// User CRUD
	r.GET("/usuarios", usuarios.Listar)
	r.POST("/usuarios", usuarios.Cadastrar)
	r.PUT("/usuarios/:id", usuarios.Atualizar)
	r.DELETE("/usuarios/:id", usuarios.Excluir)

	// Stored avatar files
	r.Static("/uploads", uploadDir)

	return r
}
