package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("error:", err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err.Error())
		return
	}

	res, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		fmt.Println("Login unsuccessful:", err.Error())
		return
	}

	a.userName = res.Username
	a.token = res.Token

	fmt.Println("Login successful")
}
