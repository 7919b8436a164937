package main

import (
	"fmt"
	"log"
	"os"

	"github.com/darasa/darasa-go"
	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/services/logsvc"
	"github.com/darasa/darasa-go/services/notifysvc"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "DARASA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.LoadConfig()
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std, conf)
	}

	app, err := darasa.New(conf,
		darasa.WithLogger(logger),
		darasa.WithNotifier(notifysvc.NewConsoleNotifier()),
		darasa.WithTitler(termTitler{}),
	)
	if err != nil {
		logger.Fatal("startup failed", err)
	}

	cli := commandLine{app: app, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

// termTitler maps page titles to the terminal title.
type termTitler struct{}

func (termTitler) SetTitle(title string) {
	fmt.Printf("\x1b]0;%s\a", title)
}
