// Package dto defines data transfer objects for the usuarios feature's HTTP transport layer.
package dto

import (
	"fmt"
	"time"
)

// UsuarioForm represents the multipart form fields of POST /usuarios and
// PUT /usuarios/:id. The avatar file itself is read separately via FormFile.
// No binding validation is applied on purpose: the server stores what the
// client sends, validation is a client responsibility in this contract.
type UsuarioForm struct {
	Nome           string `form:"nome"`
	Email          string `form:"email"`
	Senha          string `form:"senha"`
	Telefone       string `form:"telefone"`
	DataNascimento string `form:"dataNascimento"`
	Endereco       string `form:"endereco"`
	RemoveAvatar   bool   `form:"removeAvatar"`
}

// dataNascimento arrives as an HTML date input value; RFC 3339 is accepted
// for clients that echo the stored timestamp back.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDataNascimento coerces the raw date string to a time value.
// An empty string maps to nil and is persisted as NULL.
func (f UsuarioForm) ParseDataNascimento() (*time.Time, error) {
	if f.DataNascimento == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, f.DataNascimento); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("data de nascimento inválida: %q", f.DataNascimento)
}
