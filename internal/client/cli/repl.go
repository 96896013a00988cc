package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface is the command surface the REPL drives. App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Plant(ctx context.Context, kind string) error
	Water(ctx context.Context, id string) error
	Care(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Tick(ctx context.Context) error
}

// printlnFn is swapped out in tests.
var printlnFn = fmt.Println

// runREPL reads commands from scanner until EOF or exit. Errors from
// commands have already been reported to the user and are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("garden %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withArg := func(usage string, fn func(context.Context, string) error) {
			if len(args) != 1 {
				printlnFn("Usage:", usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show <id>, plant <kind>, water <id>, care <id>, remove <id>, tick, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			withArg("show <id>", a.Show)
		case "plant":
			withArg("plant <flower|tree|succulent|mushroom>", a.Plant)
		case "water":
			withArg("water <id>", a.Water)
		case "care":
			withArg("care <id>", a.Care)
		case "remove":
			withArg("remove <id>", a.Remove)
		case "tick":
			_ = a.Tick(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
