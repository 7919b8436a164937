package notifysvc

import (
	"sync"

	"github.com/darasa/darasa-go/core"
)

// Message is one recorded notification.
type Message struct {
	Level string // "success", "info", "warn", "error"
	Text  string
}

// Memory records every notification; tests assert on exactly-once
// notification behavior with it.
type Memory struct {
	mu       sync.Mutex
	messages []Message
}

var _ core.Notifier = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{Level: level, Text: msg})
}

func (m *Memory) Success(msg string) { m.record("success", msg) }
func (m *Memory) Info(msg string)    { m.record("info", msg) }
func (m *Memory) Warn(msg string)    { m.record("warn", msg) }
func (m *Memory) Error(msg string)   { m.record("error", msg) }

// Messages returns a copy of everything recorded so far.
func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Reset clears the recording.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}
