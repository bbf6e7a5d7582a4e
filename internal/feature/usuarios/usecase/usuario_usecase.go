package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
)

// UsuarioRepository abstracts the persistence layer for user records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UsuarioRepository interface {
	// List returns every user record, in store order.
	List(ctx context.Context) ([]entity.Usuario, error)

	// Create persists a new user. Returns ErrEmailJaCadastrado when the
	// email is already taken.
	Create(ctx context.Context, u *entity.Usuario) error

	// FindByID returns the user with the given ID, or ErrUsuarioNaoEncontrado.
	FindByID(ctx context.Context, id uint) (*entity.Usuario, error)

	// Update persists every field of an existing user record.
	Update(ctx context.Context, u *entity.Usuario) error

	// Delete removes the user with the given ID, or returns
	// ErrUsuarioNaoEncontrado when no such record exists.
	Delete(ctx context.Context, id uint) error
}

// AvatarStorage abstracts the upload store for avatar image files.
// Following Go convention: the interface lives with its consumer.
type AvatarStorage interface {
	// Save persists the file under a collision-resistant name derived from
	// originalName and returns the stored filename.
	Save(originalName string, r io.Reader) (string, error)

	// Remove deletes a previously stored file.
	Remove(filename string) error
}

// UsuarioInput carries the writable fields of a create or update request.
// Empty text fields are treated as "not provided": the client only submits
// non-empty values, so an empty string never overwrites a stored one.
// DataNascimento is the exception: nil always persists as NULL, matching the
// original contract.
type UsuarioInput struct {
	Nome           string
	Email          string
	Senha          string
	Telefone       string
	Endereco       string
	DataNascimento *time.Time

	// AvatarNome and Avatar describe an uploaded file, when present.
	AvatarNome string
	Avatar     io.Reader

	// RemoverAvatar clears the stored avatar and wins over any upload.
	RemoverAvatar bool
}

// UsuarioUsecase provides the business logic for user CRUD operations.
type UsuarioUsecase struct {
	repo    UsuarioRepository
	avatars AvatarStorage
}

// NewUsuarioUsecase creates a new UsuarioUsecase with the given repository
// and avatar storage.
func NewUsuarioUsecase(repo UsuarioRepository, avatars AvatarStorage) *UsuarioUsecase {
	return &UsuarioUsecase{repo: repo, avatars: avatars}
}

// Listar returns all user records. Ordering and filtering are a client
// responsibility.
func (u *UsuarioUsecase) Listar(ctx context.Context) ([]entity.Usuario, error) {
	return u.repo.List(ctx)
}

// Cadastrar creates a new user record, storing the uploaded avatar first
// when one was sent. A stored avatar is removed again if the insert fails,
// so a rejected create leaves no orphan file behind.
func (u *UsuarioUsecase) Cadastrar(ctx context.Context, in UsuarioInput) (*entity.Usuario, error) {
	novo := &entity.Usuario{
		Nome:           in.Nome,
		Email:          in.Email,
		Senha:          in.Senha,
		Telefone:       in.Telefone,
		DataNascimento: in.DataNascimento,
		Endereco:       optional(in.Endereco),
	}

	if in.Avatar != nil {
		stored, err := u.avatars.Save(in.AvatarNome, in.Avatar)
		if err != nil {
			return nil, err
		}
		novo.Avatar = &stored
	}

	if err := u.repo.Create(ctx, novo); err != nil {
		if novo.Avatar != nil {
			u.removeQuietly(*novo.Avatar)
		}
		return nil, err
	}
	return novo, nil
}

// Atualizar mutates an existing user record. Avatar policy: RemoverAvatar
// wins over a new upload, a new upload replaces the stored file, and with
// neither the avatar is left unchanged. The previous file is only removed
// after the row update succeeded.
func (u *UsuarioUsecase) Atualizar(ctx context.Context, id uint, in UsuarioInput) (*entity.Usuario, error) {
	atual, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nome != "" {
		atual.Nome = in.Nome
	}
	if in.Email != "" {
		atual.Email = in.Email
	}
	if in.Senha != "" {
		atual.Senha = in.Senha
	}
	if in.Telefone != "" {
		atual.Telefone = in.Telefone
	}
	if in.Endereco != "" {
		atual.Endereco = optional(in.Endereco)
	}
	// Absent date clears the column. The original backend applies
	// `dataNascimento ? new Date(...) : null` on update as well.
	atual.DataNascimento = in.DataNascimento

	var substituido *string
	var novoArquivo string
	switch {
	case in.RemoverAvatar:
		substituido = atual.Avatar
		atual.Avatar = nil
	case in.Avatar != nil:
		stored, err := u.avatars.Save(in.AvatarNome, in.Avatar)
		if err != nil {
			return nil, err
		}
		substituido = atual.Avatar
		atual.Avatar = &stored
		novoArquivo = stored
	}

	if err := u.repo.Update(ctx, atual); err != nil {
		if novoArquivo != "" {
			u.removeQuietly(novoArquivo)
		}
		return nil, err
	}

	if substituido != nil {
		u.removeQuietly(*substituido)
	}
	return atual, nil
}

// Excluir removes a user record and, best effort, its avatar file.
func (u *UsuarioUsecase) Excluir(ctx context.Context, id uint) error {
	atual, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	if atual.Avatar != nil {
		u.removeQuietly(*atual.Avatar)
	}
	return nil
}

// removeQuietly deletes a stored avatar file without failing the operation.
// Orphan cleanup is best effort: a leftover file is preferable to aborting a
// mutation that already committed.
func (u *UsuarioUsecase) removeQuietly(filename string) {
	if err := u.avatars.Remove(filename); err != nil {
		slog.Warn("failed to remove avatar file", "file", filename, "error", err)
	}
}

// optional maps an empty string to nil so it is persisted as NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
