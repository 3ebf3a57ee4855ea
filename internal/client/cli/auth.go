package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"vaxreg/internal/common"
)

// getLine and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getLine = promptLine
var getPassword = promptPassword

// register prompts for an email, password and optional display name and
// creates an account. Registration does not sign the user in; a separate
// login follows.
func (a *App) register(ctx context.Context) {
	email, err := getLine(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	displayName, err := getLine(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := a.store.SignUp(ctx, email, string(password), displayName); err != nil {
		log.Printf("Registration failed: %s", err.Error())
		a.store.ClearError()
		return
	}

	fmt.Println("Account created. Use 'login' to sign in.")
}

func (a *App) login(ctx context.Context) {
	email, err := getLine(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	if err := a.store.SignIn(ctx, email, string(password)); err != nil {
		log.Printf("Login failed: %s", err.Error())
		a.store.ClearError()
		return
	}

	log.Println("Login successful")
}

func (a *App) logout(ctx context.Context) {
	if err := a.store.SignOut(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		a.store.ClearError()
		return
	}
	log.Println("Logged out")
}

func (a *App) whoami(ctx context.Context) {
	a.store.FetchCurrentUser(ctx)

	user := a.store.User()
	if user == nil {
		fmt.Println("Not signed in")
		return
	}

	fmt.Printf("id:    %s\n", user.ID)
	fmt.Printf("email: %s\n", user.Email)
	if user.DisplayName != "" {
		fmt.Printf("name:  %s\n", user.DisplayName)
	}
	fmt.Printf("role:  %s\n", user.Role)
}
