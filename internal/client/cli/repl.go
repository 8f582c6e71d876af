package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	refresh(ctx context.Context)
	Help(ctx context.Context)
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Apply(ctx context.Context, id string) error
	MyApplications(ctx context.Context) error
	AllApplications(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Back(ctx context.Context) error
}

// commands that take a single vacancy id argument
var idCommands = map[string]func(execIface, context.Context, string) error{
	"show":   execIface.Show,
	"edit":   execIface.Edit,
	"toggle": execIface.Toggle,
	"delete": execIface.Delete,
	"apply":  execIface.Apply,
}

// runREPL reads a line from reader, parses the first token as the command
// and dispatches to a. The session is refreshed before every prompt. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.refresh(ctx)

		printlnFn(fmt.Sprintf("jb %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if fn, ok := idCommands[cmd]; ok {
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			_ = fn(a, ctx, args[0])
			continue
		}

		switch cmd {
		case "help":
			a.Help(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "new":
			_ = a.New(ctx)
		case "myapps":
			_ = a.MyApplications(ctx)
		case "allapps":
			_ = a.AllApplications(ctx)
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "back":
			_ = a.Back(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
