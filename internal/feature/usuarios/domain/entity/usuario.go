// Package entity defines the domain entities for the usuarios feature.
package entity

import "time"

// Usuario represents a registered user record.
// JSON field names follow the public API contract (Portuguese, camelCase).
type Usuario struct {
	// ID is the unique identifier, assigned by the store on creation.
	ID uint `gorm:"primaryKey" json:"id"`

	// Nome is the user's full name.
	Nome string `gorm:"size:255;not null" json:"nome"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Senha is stored as received. Hashing is an open question of the
	// current contract: the form reads it back when entering edit mode.
	Senha string `gorm:"size:255;not null" json:"senha"`

	// Telefone is stored exactly as the client sent it. The client applies
	// the Brazilian phone mask; the server does not validate the shape.
	Telefone string `gorm:"size:32" json:"telefone"`

	// DataNascimento is optional; nil is persisted as NULL.
	DataNascimento *time.Time `json:"dataNascimento"`

	// Endereco is optional free text.
	Endereco *string `gorm:"size:255" json:"endereco"`

	// Avatar holds the stored filename of the uploaded image, or nil when
	// the user has no avatar.
	Avatar *string `gorm:"size:255" json:"avatar"`

	// CriadoEm is set once by the store on creation.
	CriadoEm time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName keeps the table name aligned with the public resource name.
func (Usuario) TableName() string {
	return "usuarios"
}
