package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/secureconnect/internal/server/services"
)

func (a *App) SignUp(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username (at least 8 characters)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err.Error())
		return
	}

	if taken, err := a.client.CheckUsername(ctx, username); err == nil && taken {
		fmt.Println("Username already exists. Please choose a different one.")
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err.Error())
		return
	}

	// advisory only; the server decides whether the password is acceptable
	fmt.Printf("Password strength: %d/100\n", services.PasswordStrength(string(password)))

	if err := a.client.SignUp(ctx, username, string(password)); err != nil {
		fmt.Println("Signup unsuccessful:", err.Error())
		return
	}

	fmt.Println("User created successfully. You can now log in.")
}
