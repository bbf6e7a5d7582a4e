// Package adapters provides the repository implementations for the usuarios feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/usecase"
)

// usuarioGorm is the GORM-backed implementation of the UsuarioRepository
// interface. It works against MySQL and Postgres in production and against
// in-memory SQLite in tests.
type usuarioGorm struct {
	db *gorm.DB
}

// Compile-time check that usuarioGorm implements UsuarioRepository.
var _ usecase.UsuarioRepository = (*usuarioGorm)(nil)

// NewUsuarioRepository creates a new repository bound to the given gorm.DB.
func NewUsuarioRepository(db *gorm.DB) *usuarioGorm {
	return &usuarioGorm{db: db}
}

// List returns every user record in store order.
func (r *usuarioGorm) List(ctx context.Context) ([]entity.Usuario, error) {
	var usuarios []entity.Usuario
	if err := r.db.WithContext(ctx).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Create inserts a user. A unique-index violation on email is translated to
// usecase.ErrEmailJaCadastrado.
func (r *usuarioGorm) Create(ctx context.Context, u *entity.Usuario) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailJaCadastrado
		}
		return err
	}
	return nil
}

// FindByID returns the user with the given ID.
// Returns usecase.ErrUsuarioNaoEncontrado when the record does not exist.
func (r *usuarioGorm) FindByID(ctx context.Context, id uint) (*entity.Usuario, error) {
	var u entity.Usuario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	return &u, nil
}

// Update persists the full record, including fields reset to NULL.
// Save with a non-zero primary key issues an UPDATE over all columns, which
// is what lets a cleared avatar or birth date actually reach the store.
func (r *usuarioGorm) Update(ctx context.Context, u *entity.Usuario) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailJaCadastrado
		}
		return err
	}
	return nil
}

// Delete removes the user with the given ID.
// Returns usecase.ErrUsuarioNaoEncontrado when no row was affected.
func (r *usuarioGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Usuario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUsuarioNaoEncontrado
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-constraint violation for
// any of the supported drivers.
//   - MySQL error 1062: duplicate entry for a unique key
//   - Postgres SQLSTATE 23505: unique_violation
//   - SQLite (tests) reports the constraint in the message text
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
