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

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Help(ctx context.Context) error
	Scan(ctx context.Context, code string) error
	ScanMode(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context, group string) error
	Back(ctx context.Context) error
	Reset(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Delete(ctx context.Context, index string) error
	DeleteSelected(ctx context.Context, indices []string) error
	Remove(ctx context.Context, code string) error
	Clear(ctx context.Context) error
	Refresh(ctx context.Context) error
	Tab(ctx context.Context, name string) error
	Status(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The first token is the command, the rest are its arguments. Command
// handlers report their own errors, so they are ignored here. The loop ends
// on EOF, on "exit"/"quit" or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("sk (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			_ = a.Help(ctx)

		case "scan":
			if len(args) == 0 {
				printlnFn("Usage: scan <code>")
				continue
			}
			_ = a.Scan(ctx, rest)

		case "scanmode":
			_ = a.ScanMode(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <group>")
				continue
			}
			_ = a.Open(ctx, rest)

		case "back":
			_ = a.Back(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <index>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "deletesel":
			_ = a.DeleteSelected(ctx, args)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <code>")
				continue
			}
			_ = a.Remove(ctx, rest)

		case "clear":
			_ = a.Clear(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "tab":
			if len(args) != 1 {
				printlnFn("Usage: tab <scan|list>")
				continue
			}
			_ = a.Tab(ctx, args[0])

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
