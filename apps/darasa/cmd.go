package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/darasa/darasa-go"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app *darasa.App
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -username USERNAME          - log in; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout                            - log out and clear the saved session")
	fmt.Fprintln(cli.out, "  whoami                            - show the logged-in account")
	fmt.Fprintln(cli.out, "  courses                           - list courses")
	fmt.Fprintln(cli.out, "  notifications                     - list notifications")
	fmt.Fprintln(cli.out, "  open -path PATH                   - navigate to a page, guard rules apply")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The account's username. The password will be prompted next.")

	openCmd := flag.NewFlagSet("open", flag.ExitOnError)
	openPath := openCmd.String("path", "", "The page path to navigate to, eg. /student/dashboard")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginUname, string(pwd))
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "courses":
		return cli.courses()
	case "notifications":
		return cli.notifications()
	case "open":
		if err := openCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *openPath == "" {
			openCmd.Usage()
			return errHelp
		}
		return cli.open(*openPath)
	default:
		cli.printUsage()
		return errHelp
	}
}
