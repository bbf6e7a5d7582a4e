package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
)

// mockUsuarioRepository is a mock implementation of the UsuarioRepository interface.
type mockUsuarioRepository struct {
	ListFunc     func(ctx context.Context) ([]entity.Usuario, error)
	CreateFunc   func(ctx context.Context, u *entity.Usuario) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Usuario, error)
	UpdateFunc   func(ctx context.Context, u *entity.Usuario) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockUsuarioRepository) List(ctx context.Context) ([]entity.Usuario, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	u.ID = 1
	u.CriadoEm = time.Now()
	return nil
}

func (m *mockUsuarioRepository) FindByID(ctx context.Context, id uint) (*entity.Usuario, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUsuarioNaoEncontrado
}

func (m *mockUsuarioRepository) Update(ctx context.Context, u *entity.Usuario) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUsuarioRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockAvatarStorage is a mock implementation of the AvatarStorage interface.
// It records stored and removed filenames so tests can assert the file
// lifecycle.
type mockAvatarStorage struct {
	SaveFunc   func(originalName string, r io.Reader) (string, error)
	RemoveFunc func(filename string) error

	salvos    []string
	removidos []string
}

func (m *mockAvatarStorage) Save(originalName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(originalName, r)
	}
	stored := "stored-" + originalName
	m.salvos = append(m.salvos, stored)
	return stored, nil
}

func (m *mockAvatarStorage) Remove(filename string) error {
	m.removidos = append(m.removidos, filename)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(filename)
	}
	return nil
}

func usuarioExistente(avatar *string) *entity.Usuario {
	nascimento := time.Date(1998, 7, 21, 0, 0, 0, 0, time.UTC)
	endereco := "Rua das Flores, 42"
	return &entity.Usuario{
		ID:             7,
		Nome:           "Carlos Lima",
		Email:          "carlos@example.com",
		Senha:          "antiga",
		Telefone:       "(21) 91234-5678",
		DataNascimento: &nascimento,
		Endereco:       &endereco,
		Avatar:         avatar,
		CriadoEm:       time.Now(),
	}
}

func TestUsuarioUsecase_Cadastrar(t *testing.T) {
	t.Run("without avatar", func(t *testing.T) {
		repo := &mockUsuarioRepository{}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		criado, err := uc.Cadastrar(context.Background(), UsuarioInput{
			Nome:     "Ana",
			Email:    "ana@example.com",
			Senha:    "segredo",
			Telefone: "(11) 98765-4321",
		})

		require.NoError(t, err)
		assert.NotZero(t, criado.ID)
		assert.False(t, criado.CriadoEm.IsZero())
		assert.Nil(t, criado.Avatar, "no avatar should be set")
		assert.Nil(t, criado.Endereco, "empty endereco should map to NULL")
		assert.Empty(t, avatars.salvos, "no file should be stored")
	})

	t.Run("with avatar stores file before insert", func(t *testing.T) {
		repo := &mockUsuarioRepository{}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		criado, err := uc.Cadastrar(context.Background(), UsuarioInput{
			Nome:       "Ana",
			Email:      "ana@example.com",
			Senha:      "segredo",
			Telefone:   "(11) 98765-4321",
			AvatarNome: "foto.png",
			Avatar:     strings.NewReader("png-bytes"),
		})

		require.NoError(t, err)
		require.NotNil(t, criado.Avatar)
		assert.Equal(t, "stored-foto.png", *criado.Avatar)
		assert.Empty(t, avatars.removidos)
	})

	t.Run("failed insert removes the stored avatar", func(t *testing.T) {
		repo := &mockUsuarioRepository{
			CreateFunc: func(ctx context.Context, u *entity.Usuario) error {
				return ErrEmailJaCadastrado
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		criado, err := uc.Cadastrar(context.Background(), UsuarioInput{
			Nome:       "Ana",
			Email:      "dup@example.com",
			Senha:      "segredo",
			Telefone:   "(11) 98765-4321",
			AvatarNome: "foto.png",
			Avatar:     strings.NewReader("png-bytes"),
		})

		assert.Nil(t, criado)
		assert.ErrorIs(t, err, ErrEmailJaCadastrado)
		assert.Equal(t, []string{"stored-foto.png"}, avatars.removidos, "orphan file should be cleaned up")
	})

	t.Run("failed avatar write aborts the create", func(t *testing.T) {
		diskErr := errors.New("disk full")
		criouRegistro := false
		repo := &mockUsuarioRepository{
			CreateFunc: func(ctx context.Context, u *entity.Usuario) error {
				criouRegistro = true
				return nil
			},
		}
		avatars := &mockAvatarStorage{
			SaveFunc: func(originalName string, r io.Reader) (string, error) {
				return "", diskErr
			},
		}
		uc := NewUsuarioUsecase(repo, avatars)

		_, err := uc.Cadastrar(context.Background(), UsuarioInput{
			Nome:       "Ana",
			Email:      "ana@example.com",
			Senha:      "segredo",
			Telefone:   "(11) 98765-4321",
			AvatarNome: "foto.png",
			Avatar:     strings.NewReader("png-bytes"),
		})

		assert.ErrorIs(t, err, diskErr)
		assert.False(t, criouRegistro, "no record should be created")
	})
}

func TestUsuarioUsecase_Atualizar(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		repo := &mockUsuarioRepository{}
		uc := NewUsuarioUsecase(repo, &mockAvatarStorage{})

		_, err := uc.Atualizar(context.Background(), 99, UsuarioInput{Nome: "X"})

		assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
	})

	t.Run("empty text fields keep stored values", func(t *testing.T) {
		existente := usuarioExistente(nil)
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return existente, nil
			},
		}
		uc := NewUsuarioUsecase(repo, &mockAvatarStorage{})

		nascimento := time.Date(1998, 7, 21, 0, 0, 0, 0, time.UTC)
		atualizado, err := uc.Atualizar(context.Background(), 7, UsuarioInput{
			Nome:           "Carlos Alberto Lima",
			DataNascimento: &nascimento,
		})

		require.NoError(t, err)
		assert.Equal(t, "Carlos Alberto Lima", atualizado.Nome)
		assert.Equal(t, "carlos@example.com", atualizado.Email, "empty email should not overwrite")
		assert.Equal(t, "antiga", atualizado.Senha, "empty senha should not overwrite")
	})

	t.Run("absent birth date clears the column", func(t *testing.T) {
		existente := usuarioExistente(nil)
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return existente, nil
			},
		}
		uc := NewUsuarioUsecase(repo, &mockAvatarStorage{})

		atualizado, err := uc.Atualizar(context.Background(), 7, UsuarioInput{Nome: "Carlos"})

		require.NoError(t, err)
		assert.Nil(t, atualizado.DataNascimento)
	})

	t.Run("removeAvatar wins over a new upload", func(t *testing.T) {
		avatarAtual := "111-antigo.png"
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		atualizado, err := uc.Atualizar(context.Background(), 7, UsuarioInput{
			Nome:          "Carlos",
			RemoverAvatar: true,
			AvatarNome:    "novo.png",
			Avatar:        strings.NewReader("png-bytes"),
		})

		require.NoError(t, err)
		assert.Nil(t, atualizado.Avatar, "removal takes precedence")
		assert.Empty(t, avatars.salvos, "the uploaded file must not be stored")
		assert.Equal(t, []string{"111-antigo.png"}, avatars.removidos, "old file should be cleaned up")
	})

	t.Run("new upload replaces the stored avatar", func(t *testing.T) {
		avatarAtual := "111-antigo.png"
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		atualizado, err := uc.Atualizar(context.Background(), 7, UsuarioInput{
			Nome:       "Carlos",
			AvatarNome: "novo.png",
			Avatar:     strings.NewReader("png-bytes"),
		})

		require.NoError(t, err)
		require.NotNil(t, atualizado.Avatar)
		assert.Equal(t, "stored-novo.png", *atualizado.Avatar)
		assert.Equal(t, []string{"111-antigo.png"}, avatars.removidos, "replaced file should be cleaned up")
	})

	t.Run("neither flag nor upload keeps the avatar", func(t *testing.T) {
		avatarAtual := "111-antigo.png"
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		atualizado, err := uc.Atualizar(context.Background(), 7, UsuarioInput{Nome: "Carlos"})

		require.NoError(t, err)
		require.NotNil(t, atualizado.Avatar)
		assert.Equal(t, "111-antigo.png", *atualizado.Avatar)
		assert.Empty(t, avatars.removidos)
	})

	t.Run("failed row update keeps the old file and drops the new one", func(t *testing.T) {
		avatarAtual := "111-antigo.png"
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
			UpdateFunc: func(ctx context.Context, u *entity.Usuario) error {
				return ErrEmailJaCadastrado
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		_, err := uc.Atualizar(context.Background(), 7, UsuarioInput{
			Email:      "taken@example.com",
			AvatarNome: "novo.png",
			Avatar:     strings.NewReader("png-bytes"),
		})

		assert.ErrorIs(t, err, ErrEmailJaCadastrado)
		assert.Equal(t, []string{"stored-novo.png"}, avatars.removidos,
			"only the just-stored file should be removed")
	})
}

func TestUsuarioUsecase_Excluir(t *testing.T) {
	t.Run("removes record and avatar file", func(t *testing.T) {
		avatarAtual := "111-foto.png"
		excluido := uint(0)
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				excluido = id
				return nil
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		err := uc.Excluir(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), excluido)
		assert.Equal(t, []string{"111-foto.png"}, avatars.removidos)
	})

	t.Run("missing record propagates sentinel", func(t *testing.T) {
		uc := NewUsuarioUsecase(&mockUsuarioRepository{}, &mockAvatarStorage{})

		err := uc.Excluir(context.Background(), 99)

		assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
	})

	t.Run("failed delete keeps the avatar file", func(t *testing.T) {
		avatarAtual := "111-foto.png"
		storeErr := errors.New("store unavailable")
		repo := &mockUsuarioRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Usuario, error) {
				return usuarioExistente(&avatarAtual), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				return storeErr
			},
		}
		avatars := &mockAvatarStorage{}
		uc := NewUsuarioUsecase(repo, avatars)

		err := uc.Excluir(context.Background(), 7)

		assert.ErrorIs(t, err, storeErr)
		assert.Empty(t, avatars.removidos)
	})
}

func TestUsuarioUsecase_Listar(t *testing.T) {
	esperados := []entity.Usuario{
		{ID: 1, Nome: "Ana", Email: "ana@example.com"},
		{ID: 2, Nome: "Bruno", Email: "bruno@example.com"},
	}
	repo := &mockUsuarioRepository{
		ListFunc: func(ctx context.Context) ([]entity.Usuario, error) {
			return esperados, nil
		},
	}
	uc := NewUsuarioUsecase(repo, &mockAvatarStorage{})

	usuarios, err := uc.Listar(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, esperados, usuarios)
}
