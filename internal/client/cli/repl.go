package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string) error
	Status(ctx context.Context) error
	Ping(ctx context.Context) error
	Wait()
}

const helpText = `Available commands:
  (l)ist          show the roster
  refresh         reload the roster from the store
  add             open a form for a new employee
  edit <id>       open the form for an employee
  submit          resubmit the open form
  cancel          close the open form
  delete <id>     delete an employee (asks for confirmation)
  send <id>       send the notification email to an employee
  status          show pending operations
  ping            check the record store
  exit | quit     wait for pending operations and leave`

// runREPL starts a simple read–eval–print loop for the roster CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. Unknown commands are reported back to the
// operator. The loop exits on EOF or when the operator types "exit" or
// "quit"; in both cases it waits for pending operations first.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. All loop output goes through printLine, which must be
// safe to call alongside asynchronous notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, printLine func(a ...any)) {
	defer a.Wait()

	for {
		printLine(fmt.Sprintf("roster %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printLine(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printLine("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "submit":
			_ = a.Submit(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			if len(args) == 0 {
				printLine("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "send":
			if len(args) == 0 {
				printLine("Usage: send <id>")
				continue
			}
			_ = a.Send(ctx, args[0])

		case "status":
			_ = a.Status(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printLine("Waiting for pending operations...")
			a.Wait()
			printLine("Bye!")
			return

		default:
			printLine("Unknown command:", cmd)
		}
	}
}
