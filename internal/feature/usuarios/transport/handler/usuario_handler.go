// Package handler provides the HTTP handlers for the usuarios feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnaNobrega24/dfs-2025.2/internal/api"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/transport/http/dto"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/usecase"
)

// UsuarioUsecase defines the user CRUD operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UsuarioUsecase interface {
	Listar(ctx context.Context) ([]entity.Usuario, error)
	Cadastrar(ctx context.Context, in usecase.UsuarioInput) (*entity.Usuario, error)
	Atualizar(ctx context.Context, id uint, in usecase.UsuarioInput) (*entity.Usuario, error)
	Excluir(ctx context.Context, id uint) error
}

// UsuarioHandler handles the HTTP requests of the /usuarios resource.
type UsuarioHandler struct {
	uc UsuarioUsecase
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(uc UsuarioUsecase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Listar handles GET /usuarios and returns every user record as a JSON
// array. Ordering, filtering and pagination are client concerns.
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.uc.Listar(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Erro: "Erro ao listar usuários"})
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// Cadastrar handles POST /usuarios.
// The body is a multipart form with the user fields plus an optional avatar
// file. Responds 201 with the created record, 400 on a duplicate email or an
// unparseable birth date, 500 on any other store or disk failure.
func (h *UsuarioHandler) Cadastrar(c *gin.Context) {
	in, cleanup, ok := h.bindInput(c, "Erro ao cadastrar usuário")
	if !ok {
		return
	}
	defer cleanup()

	criado, err := h.uc.Cadastrar(c.Request.Context(), in)
	if err != nil {
		h.respondErro(c, "Erro ao cadastrar usuário", err)
		return
	}
	slog.Info("user created", "id", criado.ID, "email", criado.Email)
	c.JSON(http.StatusCreated, criado)
}

// Atualizar handles PUT /usuarios/:id.
// Same field set as Cadastrar plus the removeAvatar flag. removeAvatar wins
// over an uploaded file; with neither present the stored avatar is kept.
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	id, ok := h.parseID(c, "Erro ao editar usuário")
	if !ok {
		return
	}
	in, cleanup, bound := h.bindInput(c, "Erro ao editar usuário")
	if !bound {
		return
	}
	defer cleanup()

	atualizado, err := h.uc.Atualizar(c.Request.Context(), id, in)
	if err != nil {
		h.respondErro(c, "Erro ao editar usuário", err)
		return
	}
	slog.Info("user updated", "id", atualizado.ID)
	c.JSON(http.StatusOK, atualizado)
}

// Excluir handles DELETE /usuarios/:id and responds with a confirmation
// message on success.
func (h *UsuarioHandler) Excluir(c *gin.Context) {
	id, ok := h.parseID(c, "Erro ao excluir usuário")
	if !ok {
		return
	}
	if err := h.uc.Excluir(c.Request.Context(), id); err != nil {
		h.respondErro(c, "Erro ao excluir usuário", err)
		return
	}
	slog.Info("user deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Mensagem: "Usuário excluído com sucesso"})
}

// bindInput reads the multipart form fields and the optional avatar file
// into a usecase input. The returned cleanup closes the uploaded file and
// must be deferred by the caller. On failure the error response has already
// been written and ok is false.
func (h *UsuarioHandler) bindInput(c *gin.Context, op string) (in usecase.UsuarioInput, cleanup func(), ok bool) {
	cleanup = func() {}

	var form dto.UsuarioForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("invalid form payload", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Erro: op, Detalhes: "formulário inválido"})
		return in, cleanup, false
	}

	nascimento, err := form.ParseDataNascimento()
	if err != nil {
		slog.Warn("invalid birth date", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Erro: op, Detalhes: "data de nascimento inválida"})
		return in, cleanup, false
	}

	in = usecase.UsuarioInput{
		Nome:           form.Nome,
		Email:          form.Email,
		Senha:          form.Senha,
		Telefone:       form.Telefone,
		Endereco:       form.Endereco,
		DataNascimento: nascimento,
		RemoverAvatar:  form.RemoveAvatar,
	}

	// The avatar file is optional; a missing field is not an error.
	if file, err := c.FormFile("avatar"); err == nil {
		f, err := file.Open()
		if err != nil {
			slog.Error("failed to open uploaded avatar", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Erro: op, Detalhes: "falha ao ler o arquivo enviado"})
			return in, cleanup, false
		}
		cleanup = func() {
			if err := f.Close(); err != nil {
				slog.Warn("failed to close uploaded avatar", "error", err)
			}
		}
		in.AvatarNome = file.Filename
		in.Avatar = f
	}

	return in, cleanup, true
}

// parseID extracts the numeric :id path parameter.
func (h *UsuarioHandler) parseID(c *gin.Context, op string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		slog.Warn("invalid id parameter", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Erro: op, Detalhes: "id inválido"})
		return 0, false
	}
	return uint(id), true
}

// respondErro maps usecase errors to the HTTP error envelope. Known business
// errors become 400 with a stable detail string; everything else is logged
// and answered with a generic 500, never exposing internals.
func (h *UsuarioHandler) respondErro(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmailJaCadastrado):
		slog.Warn("duplicate email rejected", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Erro: op, Detalhes: api.DetalheEmailJaCadastrado})
	case errors.Is(err, usecase.ErrUsuarioNaoEncontrado):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Erro: op, Detalhes: api.DetalheUsuarioNaoEncontrado})
	default:
		slog.Error("operation failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Erro: op, Detalhes: "erro interno"})
	}
}
