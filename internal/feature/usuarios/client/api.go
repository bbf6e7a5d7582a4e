// Package client implements the user-registry client application: a REST
// client plus the form and list state driving it. All state lives in
// explicit objects mutated only through their methods.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnaNobrega24/dfs-2025.2/internal/api"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
	platformhttp "github.com/AnaNobrega24/dfs-2025.2/internal/platform/http"
)

// ErrEmailJaCadastrado is detected from the server's duplicate-email detail
// so the form can show its specific notification.
var ErrEmailJaCadastrado = errors.New("e-mail já cadastrado")

// APIError is any non-2xx response that is not a recognized business error.
type APIError struct {
	Status   int
	Erro     string
	Detalhes string
}

func (e *APIError) Error() string {
	if e.Detalhes != "" {
		return fmt.Sprintf("%s (%d): %s", e.Erro, e.Status, e.Detalhes)
	}
	return fmt.Sprintf("%s (%d)", e.Erro, e.Status)
}

// Client talks to the user-registry HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL. No request timeout is
// configured, matching the contract of the browser client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    platformhttp.NewHTTPClient(0),
	}
}

// AvatarURL returns the static URL of a stored avatar file.
func (c *Client) AvatarURL(filename string) string {
	return c.baseURL + "/uploads/" + filename
}

// Listar fetches all user records.
func (c *Client) Listar(ctx context.Context) ([]entity.Usuario, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/usuarios", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar usuários: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeErro(resp)
	}
	var usuarios []entity.Usuario
	if err := json.NewDecoder(resp.Body).Decode(&usuarios); err != nil {
		return nil, fmt.Errorf("resposta inválida: %w", err)
	}
	return usuarios, nil
}

// Cadastrar submits the form as POST /usuarios and returns the created record.
func (c *Client) Cadastrar(ctx context.Context, f Formulario) (*entity.Usuario, error) {
	return c.enviar(ctx, http.MethodPost, c.baseURL+"/usuarios", f, http.StatusCreated)
}

// Atualizar submits the form as PUT /usuarios/:id and returns the updated record.
func (c *Client) Atualizar(ctx context.Context, id uint, f Formulario) (*entity.Usuario, error) {
	return c.enviar(ctx, http.MethodPut, fmt.Sprintf("%s/usuarios/%d", c.baseURL, id), f, http.StatusOK)
}

// Excluir deletes the user with the given ID.
func (c *Client) Excluir(ctx context.Context, id uint) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/usuarios/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao excluir usuário: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeErro(resp)
	}
	return nil
}

// enviar builds the multipart body from the form and performs the request.
func (c *Client) enviar(ctx context.Context, method, url string, f Formulario, wantStatus int) (*entity.Usuario, error) {
	body, contentType, err := montarMultipart(f)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao salvar usuário: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, decodeErro(resp)
	}
	var u entity.Usuario
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("resposta inválida: %w", err)
	}
	return &u, nil
}

// montarMultipart encodes the form the way the browser client does: only
// non-empty fields are appended, then the pending avatar file, then the
// removeAvatar flag when set.
func montarMultipart(f Formulario) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	campos := []struct{ nome, valor string }{
		{"nome", f.Nome},
		{"email", f.Email},
		{"senha", f.Senha},
		{"telefone", f.Telefone},
		{"dataNascimento", f.DataNascimento},
		{"endereco", f.Endereco},
	}
	for _, campo := range campos {
		if campo.valor == "" {
			continue
		}
		if err := w.WriteField(campo.nome, campo.valor); err != nil {
			return nil, "", err
		}
	}

	if f.Avatar != "" {
		file, err := os.Open(f.Avatar)
		if err != nil {
			return nil, "", fmt.Errorf("falha ao abrir o avatar: %w", err)
		}
		defer file.Close()

		part, err := w.CreateFormFile("avatar", filepath.Base(f.Avatar))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("falha ao ler o avatar: %w", err)
		}
	}

	if f.RemoverAvatar {
		if err := w.WriteField("removeAvatar", "true"); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// decodeErro turns an error response into a Go error, surfacing the
// duplicate-email case as ErrEmailJaCadastrado.
func decodeErro(resp *http.Response) error {
	var payload api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &APIError{Status: resp.StatusCode, Erro: "resposta inesperada do servidor"}
	}
	if payload.Detalhes == api.DetalheEmailJaCadastrado {
		return fmt.Errorf("%s: %w", payload.Erro, ErrEmailJaCadastrado)
	}
	return &APIError{Status: resp.StatusCode, Erro: payload.Erro, Detalhes: payload.Detalhes}
}
