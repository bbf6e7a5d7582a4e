// Package api defines the shared response envelopes of the HTTP API.
package api

// ErrorResponse is the error payload returned by every failing endpoint.
// Erro carries the human-readable message; Detalhes carries a stable,
// machine-checkable detail string. Raw driver errors are never exposed here,
// they go to the server log instead.
type ErrorResponse struct {
	Erro     string `json:"erro"`
	Detalhes string `json:"detalhes,omitempty"`
}

// MessageResponse is the confirmation payload of endpoints that do not
// return a record, such as DELETE /usuarios/:id.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// Detalhes values the client is allowed to branch on.
const (
	DetalheEmailJaCadastrado    = "e-mail já cadastrado"
	DetalheUsuarioNaoEncontrado = "usuário não encontrado"
)
