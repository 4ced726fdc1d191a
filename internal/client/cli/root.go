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
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to SecureConnect CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("scli %s> ", a.getStatus())
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
			fmt.Println("Available commands: signup, login, check <username>, whoami, ping, exit")
		case "signup":
			a.SignUp(ctx)
		case "login":
			a.Login(ctx)
		case "check":
			a.CheckUsername(ctx, args)
		case "whoami":
			a.WhoAmI()
		case "ping":
			if err := a.client.Ping(ctx); err != nil {
				fmt.Println("Server unavailable:", err.Error())
			} else {
				fmt.Println("OK")
			}
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) WhoAmI() {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}
	fmt.Println("Logged in as", a.userName)
}
