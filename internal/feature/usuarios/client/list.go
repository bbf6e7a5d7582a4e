package client

import (
	"context"
	"sort"
	"strings"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
)

// UsuariosPorPagina is the fixed page size of the list panel.
const UsuariosPorPagina = 5

// Lista is the state of the list panel: the fetched records plus the search
// text, sort direction and current page. Filtering, sorting and pagination
// happen in memory over the full fetched set.
type Lista struct {
	usuarios []entity.Usuario

	Busca       string
	OrdenadoAsc bool
	Pagina      int
}

// NovaLista creates an empty list, sorted ascending, on page 1.
func NovaLista() *Lista {
	return &Lista{OrdenadoAsc: true, Pagina: 1}
}

// Carregar refetches the full user set from the API.
func (l *Lista) Carregar(ctx context.Context, c *Client) error {
	usuarios, err := c.Listar(ctx)
	if err != nil {
		return err
	}
	l.usuarios = usuarios
	return nil
}

// Usuarios returns the raw fetched set.
func (l *Lista) Usuarios() []entity.Usuario {
	return l.usuarios
}

// DefinirBusca updates the search text. The current page is intentionally
// left alone: shrinking the result set can leave the view on a page past the
// end, exactly as the original UI behaves.
func (l *Lista) DefinirBusca(busca string) {
	l.Busca = busca
}

// AlternarOrdenacao flips between ascending and descending order by nome.
func (l *Lista) AlternarOrdenacao() {
	l.OrdenadoAsc = !l.OrdenadoAsc
}

// IrParaPagina selects a 1-based page.
func (l *Lista) IrParaPagina(pagina int) {
	if pagina >= 1 {
		l.Pagina = pagina
	}
}

// Filtrados returns the fetched set filtered by the search text and sorted
// by nome. The match is a case-insensitive substring test against nome OR
// email.
func (l *Lista) Filtrados() []entity.Usuario {
	busca := strings.ToLower(l.Busca)

	filtrados := make([]entity.Usuario, 0, len(l.usuarios))
	for _, u := range l.usuarios {
		if strings.Contains(strings.ToLower(u.Nome), busca) ||
			strings.Contains(strings.ToLower(u.Email), busca) {
			filtrados = append(filtrados, u)
		}
	}

	sort.SliceStable(filtrados, func(i, j int) bool {
		ni := strings.ToLower(filtrados[i].Nome)
		nj := strings.ToLower(filtrados[j].Nome)
		if l.OrdenadoAsc {
			return ni < nj
		}
		return ni > nj
	})
	return filtrados
}

// Paginados returns the slice of the filtered set visible on the current
// page. A page past the end yields an empty slice.
func (l *Lista) Paginados() []entity.Usuario {
	filtrados := l.Filtrados()
	inicio := (l.Pagina - 1) * UsuariosPorPagina
	if inicio >= len(filtrados) {
		return nil
	}
	fim := inicio + UsuariosPorPagina
	if fim > len(filtrados) {
		fim = len(filtrados)
	}
	return filtrados[inicio:fim]
}

// TotalPaginas returns the page count of the filtered set.
func (l *Lista) TotalPaginas() int {
	return (len(l.Filtrados()) + UsuariosPorPagina - 1) / UsuariosPorPagina
}

// Iniciais derives the fallback avatar badge from a name: the first letter
// of each whitespace-separated token, uppercased, truncated to two.
func Iniciais(nome string) string {
	var b strings.Builder
	for _, parte := range strings.Fields(nome) {
		b.WriteString(string([]rune(parte)[0]))
	}
	iniciais := []rune(strings.ToUpper(b.String()))
	if len(iniciais) > 2 {
		iniciais = iniciais[:2]
	}
	return string(iniciais)
}
