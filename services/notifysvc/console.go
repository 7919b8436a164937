// Package notifysvc provides the core.Notifier implementations: the console
// notifier prints transient messages the way the web client toasts them;
// the memory notifier records them for tests.
package notifysvc

import (
	"fmt"
	"io"
	"os"

	"github.com/darasa/darasa-go/core"
)

type consoleNotifier struct {
	out io.Writer
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier() core.Notifier {
	return &consoleNotifier{out: os.Stderr}
}

func (n consoleNotifier) emit(level, msg string) {
	_, _ = fmt.Fprintf(n.out, "[%s] %s\n", level, msg)
}

func (n consoleNotifier) Success(msg string) { n.emit("ok", msg) }
func (n consoleNotifier) Info(msg string)    { n.emit("info", msg) }
func (n consoleNotifier) Warn(msg string)    { n.emit("warn", msg) }
func (n consoleNotifier) Error(msg string)   { n.emit("error", msg) }
