package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/darasa/darasa-go"
	"github.com/darasa/darasa-go/apitest"
	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/storage/memstore"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	srv := apitest.New()
	t.Cleanup(srv.Close)

	conf := &core.Config{
		AppName:      "Darasa",
		ProductTitle: "Darasa Smart Course Platform",
		Env:          "TEST",
		BaseURL:      srv.URL(),
	}
	app, err := darasa.New(conf, darasa.WithStorage(memstore.New()))
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	out := new(bytes.Buffer)
	return &commandLine{app: app, out: out}, out
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string   // fed to the password prompt
	wantErr error
	wantOut string // substring of the produced output
}

func Test_commandLine_run(t *testing.T) {
	cli, out := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "login: no username", args: []string{"login"}, wantErr: errHelp},
		{name: "login: empty password", args: []string{"login", "-username", "jelani"}, wantErr: errHelp},
		{name: "open: no path", args: []string{"open"}, wantErr: errHelp},
		{name: "whoami while logged out", args: []string{"whoami"}, wantOut: "Not logged in"},
		{name: "login", args: []string{"login", "-username", "jelani"}, pwd: "s3cret", wantOut: "Welcome, Jelani Mwangi (TEACHER)"},
		{name: "whoami", args: []string{"whoami"}, wantOut: "Username: jelani"},
		{name: "courses", args: []string{"courses"}, wantOut: "Linear Algebra"},
		{name: "notifications", args: []string{"notifications"}, wantOut: "2 notifications, 1 unread"},
		{name: "open allowed page", args: []string{"open", "-path", "/teacher/courses"}, wantOut: "At /teacher/courses"},
		{name: "open forbidden page", args: []string{"open", "-path", "/admin/users"}, wantOut: "At /403"},
		{name: "logout", args: []string{"logout"}, wantOut: "Logged out"},
	}
	for _, tt := range tests {
		args := append([]string{"darasa"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("cli.run() unexpected error = %v", err)
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("cli.run() output = %q, want substring %q", out.String(), tt.wantOut)
			}
		})
	}

	if cli.app.Session.IsLoggedIn() {
		t.Error("session must be cleared after logout")
	}
}
