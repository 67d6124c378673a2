package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lifetracker/internal/client/api"
)

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	user, err := a.api.Register(ctx, api.RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(password),
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	a.userEmail = user.Email
	fmt.Printf("Welcome, %s!\n", user.FirstName)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	a.userEmail = user.Email
	fmt.Printf("Welcome back, %s!\n", user.FirstName)
}

func (a *App) Me(ctx context.Context) {

	user, err := a.api.Me(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("%s %s <%s> (username: %s)\n", user.FirstName, user.LastName, user.Email, user.Username)
}

func (a *App) Logout(ctx context.Context) {
	a.api.Logout()
	a.userEmail = ""
	fmt.Println("Logged out")
}
