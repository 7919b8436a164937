package main

import (
	"context"
	"fmt"

	"github.com/darasa/darasa-go/core/session"
)

func (cli *commandLine) login(uname, pwd string) error {
	ctx := context.Background()
	usr, err := cli.app.Session.Login(ctx, session.Credentials{Username: uname, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Welcome, %s (%s)\n", usr.DisplayName(), usr.Role)
	cli.app.Router.Push(cli.app.Session.DefaultRoute())
	return nil
}

func (cli *commandLine) logout() error {
	cli.app.Session.Logout(context.Background())
	cli.app.Router.Push(session.RouteLogin)
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	sess := cli.app.Session
	if !sess.IsLoggedIn() {
		fmt.Fprintln(cli.out, "Not logged in")
		return nil
	}
	usr, err := sess.CurrentUser(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "ID:       %d\n", usr.ID)
	fmt.Fprintf(cli.out, "Username: %s\n", usr.Username)
	fmt.Fprintf(cli.out, "Name:     %s\n", usr.DisplayName())
	fmt.Fprintf(cli.out, "Email:    %s\n", usr.Email)
	fmt.Fprintf(cli.out, "Role:     %s\n", usr.Role)
	if claims, err := sess.Claims(); err == nil && claims != nil && claims.ExpiresAt > 0 {
		fmt.Fprintf(cli.out, "Token expires at: %d\n", claims.ExpiresAt)
	}
	return nil
}
