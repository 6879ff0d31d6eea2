package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for prompt output. Tests replace it with a stub.
var printlnFn = fmt.Println

// commandSurface is the minimal command set the REPL needs. *App satisfies
// it; tests provide a lightweight stub.
type commandSurface interface {
	Help()
	Show(ctx context.Context)
	List(ctx context.Context)
	Card(ctx context.Context)
	Page(ctx context.Context, target int)
	Next(ctx context.Context)
	Prev(ctx context.Context)
	Size(ctx context.Context, n int)
	Add(ctx context.Context)
	Edit(ctx context.Context, id int)
	Delete(ctx context.Context, id int)
	Confirm(ctx context.Context)
	Cancel(ctx context.Context)
}

// runREPL reads a command per line and dispatches it. The loop ends on
// scanner EOF, context cancellation, or "exit"/"quit".
func runREPL(ctx context.Context, a commandSurface, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn("staffdir> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			a.Help()

		case "show":
			a.Show(ctx)

		case "list":
			a.List(ctx)

		case "card", "cards":
			a.Card(ctx)

		case "page":
			if n, ok := intArg(parts); ok {
				a.Page(ctx, n)
			} else {
				printlnFn("Usage: page N")
			}

		case "next":
			a.Next(ctx)

		case "prev":
			a.Prev(ctx)

		case "size":
			if n, ok := intArg(parts); ok {
				a.Size(ctx, n)
			} else {
				printlnFn("Usage: size N")
			}

		case "add":
			a.Add(ctx)

		case "edit":
			if n, ok := intArg(parts); ok {
				a.Edit(ctx, n)
			} else {
				printlnFn("Usage: edit ID")
			}

		case "delete", "del":
			if n, ok := intArg(parts); ok {
				a.Delete(ctx, n)
			} else {
				printlnFn("Usage: delete ID")
			}

		case "yes", "y":
			a.Confirm(ctx)

		case "no":
			a.Cancel(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func intArg(parts []string) (int, bool) {
	if len(parts) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
