package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to LifeTracker CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("lt %s> ", a.getStatus())
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
				fmt.Println("Available commands: (l)ist, add, get <id>, stats, me, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "me":
			a.Me(ctx)
		case "l", "list":
			a.list(ctx)
		case "add":
			a.add(ctx)
		case "get":
			if len(args) == 0 {
				fmt.Println("Usage: get <id>")
				continue
			}
			a.get(ctx, args[0])
		case "stats":
			a.stats(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
