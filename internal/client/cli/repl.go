package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	SelectFile(ctx context.Context, path string) error
	SetEmail(ctx context.Context, email string) error
	Submit(ctx context.Context) error
	History(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the importer CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - status         — show the signed-in account
//	  - file <path>    — select the spreadsheet to submit
//	  - email <addr>   — set the target employee e-mail
//	  - upload         — submit the selected spreadsheet
//	  - history        — list past submissions
//	  - format         — describe the expected spreadsheet columns
//	  - logout         — log out and discard the saved session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own outcomes. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("exp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, file <path>, email <addr>, upload, history, format, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "status":
			_ = a.Status(ctx)

		case "file":
			if len(args) == 0 {
				printlnFn("Usage: file <path>")
				continue
			}
			_ = a.SelectFile(ctx, strings.Join(args, " "))

		case "email":
			if len(args) == 0 {
				printlnFn("Usage: email <addr>")
				continue
			}
			_ = a.SetEmail(ctx, args[0])

		case "upload":
			_ = a.Submit(ctx)

		case "history":
			_ = a.History(ctx)

		case "format":
			printFormatHelp()

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printFormatHelp() {
	printlnFn("Formato do arquivo Excel (.xls, .xlsx). Colunas esperadas:")
	printlnFn("  Data          - data da transação")
	printlnFn("  Movimentação  - descrição/merchant")
	printlnFn("  Valor em BRL  - valor em reais")
	printlnFn("  Profissional  - nome do funcionário")
}
