// Command client is the terminal front end of the user registry. It drives
// the form and list state from the client package against a running server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/client"
	"github.com/AnaNobrega24/dfs-2025.2/internal/feature/usuarios/domain/entity"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	api := client.New(baseURL)
	lista := client.NovaLista()
	form := client.NovoFormulario()
	ctx := context.Background()

	if err := lista.Carregar(ctx, api); err != nil {
		fmt.Fprintln(os.Stderr, "Erro ao buscar usuários:", err)
	}

	fmt.Println("Cadastro e Gerenciamento de Usuários —", baseURL)
	fmt.Println(`Comandos: listar, buscar <texto>, ordenar, pagina <n>, ver <id>, novo, editar <id>, excluir <id>, sair`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "listar":
			imprimirLista(lista)
		case "buscar":
			lista.DefinirBusca(arg)
			imprimirLista(lista)
		case "ordenar":
			lista.AlternarOrdenacao()
			imprimirLista(lista)
		case "pagina":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Uso: pagina <n>")
				continue
			}
			lista.IrParaPagina(n)
			imprimirLista(lista)
		case "ver":
			comUsuario(lista, arg, func(u entity.Usuario) {
				imprimirDetalhes(api, u)
			})
		case "novo":
			form.Limpar()
			preencherFormulario(scanner, form, false)
			notificar(form.Submeter(ctx, api))
			recarregar(ctx, api, lista)
		case "editar":
			comUsuario(lista, arg, func(u entity.Usuario) {
				form.IniciarEdicao(u)
				preencherFormulario(scanner, form, u.Avatar != nil)
				notificar(form.Submeter(ctx, api))
				recarregar(ctx, api, lista)
			})
		case "excluir":
			comUsuario(lista, arg, func(u entity.Usuario) {
				fmt.Print("Deseja realmente excluir este usuário? (s/n) ")
				if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "s" {
					return
				}
				if err := api.Excluir(ctx, u.ID); err != nil {
					fmt.Println("Erro ao excluir usuário:", err)
					return
				}
				fmt.Println("Usuário excluído com sucesso")
				recarregar(ctx, api, lista)
			})
		case "sair":
			return
		default:
			fmt.Println("Comando desconhecido:", cmd)
		}
	}
}

// comUsuario resolves an id argument against the fetched set and runs fn.
func comUsuario(lista *client.Lista, arg string, fn func(entity.Usuario)) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		fmt.Println("Informe um id numérico.")
		return
	}
	for _, u := range lista.Usuarios() {
		if u.ID == uint(id) {
			fn(u)
			return
		}
	}
	fmt.Println("Nenhum usuário com id", id, "na lista. Rode 'listar' primeiro.")
}

func recarregar(ctx context.Context, api *client.Client, lista *client.Lista) {
	if err := lista.Carregar(ctx, api); err != nil {
		fmt.Println("Erro ao buscar usuários:", err)
	}
}

func imprimirLista(lista *client.Lista) {
	visiveis := lista.Paginados()
	if len(visiveis) == 0 {
		fmt.Println("Nenhum usuário encontrado.")
	}
	for _, u := range visiveis {
		badge := client.Iniciais(u.Nome)
		if u.Avatar != nil {
			badge = "img"
		}
		fmt.Printf("%4d  [%-3s]  %-30s  %s\n", u.ID, badge, u.Nome, u.Email)
	}

	direcao := "A → Z"
	if !lista.OrdenadoAsc {
		direcao = "Z → A"
	}
	fmt.Printf("página %d de %d | ordem %s | busca %q\n",
		lista.Pagina, lista.TotalPaginas(), direcao, lista.Busca)
}

func imprimirDetalhes(api *client.Client, u entity.Usuario) {
	fmt.Println("Nome:      ", u.Nome)
	fmt.Println("E-mail:    ", u.Email)
	fmt.Println("Telefone:  ", u.Telefone)
	if u.DataNascimento != nil {
		fmt.Println("Nascimento:", u.DataNascimento.Format("2006-01-02"))
	}
	if u.Endereco != nil {
		fmt.Println("Endereço:  ", *u.Endereco)
	}
	if u.Avatar != nil {
		fmt.Println("Avatar:    ", api.AvatarURL(*u.Avatar))
	}
	fmt.Println("Cadastro:  ", u.CriadoEm.Format("2006-01-02"))
}

// preencherFormulario prompts for every field. In edit mode an empty answer
// keeps the current value shown in brackets.
func preencherFormulario(scanner *bufio.Scanner, form *client.Formulario, temAvatar bool) {
	campos := []struct{ chave, rotulo, atual string }{
		{"nome", "Nome completo", form.Nome},
		{"email", "E-mail", form.Email},
		{"senha", "Senha", form.Senha},
		{"telefone", "Telefone", form.Telefone},
		{"dataNascimento", "Data de nascimento (AAAA-MM-DD)", form.DataNascimento},
		{"endereco", "Endereço", form.Endereco},
	}
	for _, campo := range campos {
		if v := perguntar(scanner, campo.rotulo, campo.atual); v != "" {
			form.DefinirCampo(campo.chave, v)
		}
	}
	form.Avatar = perguntar(scanner, "Avatar (caminho do arquivo)", "")
	if temAvatar {
		fmt.Print("Remover avatar atual? (s/n) ")
		if scanner.Scan() && strings.TrimSpace(scanner.Text()) == "s" {
			form.RemoverAvatar = true
		}
	}
}

func perguntar(scanner *bufio.Scanner, rotulo, atual string) string {
	if atual != "" {
		fmt.Printf("%s [%s]: ", rotulo, atual)
	} else {
		fmt.Printf("%s: ", rotulo)
	}
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func notificar(n client.Notificacao) {
	fmt.Printf("[%s] %s\n", n.Tipo, n.Mensagem)
}
