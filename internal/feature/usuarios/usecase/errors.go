// Package usecase implements the business logic for the usuarios feature.
package usecase

import "errors"

var (
	// ErrEmailJaCadastrado is returned when creating or updating a user
	// would violate the unique email constraint.
	ErrEmailJaCadastrado = errors.New("e-mail já cadastrado")

	// ErrUsuarioNaoEncontrado is returned when no user exists with the
	// given ID.
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)
