package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) CheckUsername(ctx context.Context, args []string) {

	var username string
	var err error

	if len(args) > 0 {
		username = args[0]
	} else {
		username, err = GetSimpleText(a.reader, "Enter username to check", os.Stdout)
		if err != nil {
			fmt.Println("error:", err.Error())
			return
		}
	}

	exists, err := a.client.CheckUsername(ctx, username)
	if err != nil {
		fmt.Println("Check unsuccessful:", err.Error())
		return
	}

	if exists {
		fmt.Println("Username is taken")
	} else {
		fmt.Println("Username is available")
	}
}
