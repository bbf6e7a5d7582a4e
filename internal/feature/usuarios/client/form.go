package client

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
)

// Notification variants, mirroring the toast styles of the original UI.
const (
	TipoSucesso = "success"
	TipoAviso   = "warning"
	TipoErro    = "danger"
)

// Notificacao is a transient user-facing message produced by form events.
type Notificacao struct {
	Tipo     string
	Mensagem string
}

// emailRegex is the client-side shape check: local@domain.tld, no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Formulario is the state of the create/edit panel. A zero editandoID means
// create mode; IniciarEdicao switches to edit mode for an existing record.
type Formulario struct {
	Nome           string
	Email          string
	Senha          string
	Telefone       string
	DataNascimento string
	Endereco       string

	// Avatar is the path of the pending file selection, empty when none.
	Avatar string
	// RemoverAvatar requests clearing the stored avatar on submit.
	RemoverAvatar bool

	editandoID uint
}

// NovoFormulario creates an empty form in create mode.
func NovoFormulario() *Formulario {
	return &Formulario{}
}

// Editando reports whether the form is editing an existing record.
func (f *Formulario) Editando() bool {
	return f.editandoID != 0
}

// EditandoID returns the ID of the record being edited, 0 in create mode.
func (f *Formulario) EditandoID() uint {
	return f.editandoID
}

// DefinirCampo updates one field from raw input. The telefone field is
// re-masked on every call, the way the browser form re-formats per keystroke.
func (f *Formulario) DefinirCampo(campo, valor string) {
	switch campo {
	case "nome":
		f.Nome = valor
	case "email":
		f.Email = valor
	case "senha":
		f.Senha = valor
	case "telefone":
		f.Telefone = FormatarTelefone(valor)
	case "dataNascimento":
		f.DataNascimento = valor
	case "endereco":
		f.Endereco = valor
	}
}

// FormatarTelefone applies the Brazilian phone mask (DD) DDDDD-DDDD.
// Non-digits are stripped, at most 11 digits are kept, and separators are
// re-inserted according to how many digits are present.
func FormatarTelefone(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digitos := b.String()
	if len(digitos) > 11 {
		digitos = digitos[:11]
	}

	switch {
	case len(digitos) <= 2:
		return "(" + digitos
	case len(digitos) <= 6:
		return fmt.Sprintf("(%s) %s", digitos[:2], digitos[2:])
	case len(digitos) <= 10:
		return fmt.Sprintf("(%s) %s-%s", digitos[:2], digitos[2:6], digitos[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digitos[:2], digitos[2:7], digitos[7:])
	}
}

// Validar runs the pre-submit checks. It returns nil when the form may be
// submitted, otherwise the warning notification to show. Validation never
// reaches the server.
func (f *Formulario) Validar() *Notificacao {
	if f.Nome == "" || f.Email == "" || f.Senha == "" || f.Telefone == "" || f.DataNascimento == "" {
		return &Notificacao{Tipo: TipoAviso, Mensagem: "Preencha todos os campos obrigatórios."}
	}
	if !emailRegex.MatchString(f.Email) {
		return &Notificacao{Tipo: TipoAviso, Mensagem: "Formato de e-mail inválido."}
	}
	return nil
}

// IniciarEdicao pre-fills the form from an existing record and switches to
// edit mode. The stored timestamp is reduced to its date-only portion and
// any pending avatar selection is reset.
func (f *Formulario) IniciarEdicao(u entity.Usuario) {
	f.Nome = u.Nome
	f.Email = u.Email
	f.Senha = u.Senha
	f.Telefone = u.Telefone
	if u.DataNascimento != nil {
		f.DataNascimento = u.DataNascimento.Format("2006-01-02")
	} else {
		f.DataNascimento = ""
	}
	if u.Endereco != nil {
		f.Endereco = *u.Endereco
	} else {
		f.Endereco = ""
	}
	f.Avatar = ""
	f.RemoverAvatar = false
	f.editandoID = u.ID
}

// Limpar resets every field and returns the form to create mode.
func (f *Formulario) Limpar() {
	*f = Formulario{}
}

// Submeter validates and sends the form, returning the notification for the
// outcome. On success the form is cleared and the caller should refresh the
// list. The duplicate-email failure gets its own message; every other
// failure gets the generic one.
func (f *Formulario) Submeter(ctx context.Context, c *Client) Notificacao {
	if n := f.Validar(); n != nil {
		return *n
	}

	var (
		err      error
		mensagem string
	)
	if f.Editando() {
		_, err = c.Atualizar(ctx, f.editandoID, *f)
		mensagem = "Usuário atualizado com sucesso!"
	} else {
		_, err = c.Cadastrar(ctx, *f)
		mensagem = "Usuário cadastrado com sucesso!"
	}

	if err != nil {
		if errors.Is(err, ErrEmailJaCadastrado) {
			return Notificacao{Tipo: TipoErro, Mensagem: "Este e-mail já está cadastrado."}
		}
		return Notificacao{Tipo: TipoErro, Mensagem: "Erro ao salvar usuário."}
	}

	f.Limpar()
	return Notificacao{Tipo: TipoSucesso, Mensagem: mensagem}
}
