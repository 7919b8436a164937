package core

// Notifier surfaces transient user-facing messages, one per outcome.
// Implementations live under services/notifysvc.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Progress drives the busy indicator shown while a request or a navigation
// is in flight. Start and Done are always paired, exactly once per
// operation, whatever the outcome.
type Progress interface {
	Start()
	Done()
}

type nopNotifier struct{}

var _ Notifier = (*nopNotifier)(nil)

func (nopNotifier) Success(string) {}
func (nopNotifier) Info(string)    {}
func (nopNotifier) Warn(string)    {}
func (nopNotifier) Error(string)   {}

func NopNotifier() Notifier { return nopNotifier{} }

type nopProgress struct{}

var _ Progress = (*nopProgress)(nil)

func (nopProgress) Start() {}
func (nopProgress) Done()  {}

func NopProgress() Progress { return nopProgress{} }
