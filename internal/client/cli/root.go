package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	user := a.store.User()
	if user == nil {
		return "(anonymous)"
	}
	name := user.DisplayName
	if name == "" {
		name = user.Email
	}
	if a.store.IsAdmin() {
		return fmt.Sprintf("(%s, admin)", name)
	}
	return fmt.Sprintf("(%s)", name)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Vaccination registry CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("vaxreg %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
				fmt.Println("Available commands: list, show <id>, search <query>, create, edit <id>, delete <id>, watch, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, list, show <id>, search <query>, watch, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "l", "list":
			a.list(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <id>")
				continue
			}
			a.show(ctx, args[0])
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "create":
			a.create(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			a.edit(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			a.delete(ctx, args[0])
		case "watch":
			a.watch(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
