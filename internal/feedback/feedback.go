// Package feedback routes user-facing messages to the console or to the
// TUI status line.
package feedback

import (
	"sync"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/colors"
)

// Handler receives user-facing messages.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Level is the severity of a message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	}
	return "unknown"
}

// Message is one recorded message.
type Message struct {
	Text      string
	Level     Level
	Timestamp time.Time
}

// Console prints messages through the colors package.
type Console struct{}

var _ Handler = Console{}

func (Console) Error(msg string)   { colors.Error(msg) }
func (Console) Warning(msg string) { colors.Warning(msg) }
func (Console) Info(msg string)    { colors.Info(msg) }
func (Console) Success(msg string) { colors.Success(msg) }

// StatusLine keeps the latest message for display. onMessage, when set, is
// called with every new message while no lock is held.
type StatusLine struct {
	mu        sync.RWMutex
	latest    Message
	has       bool
	seq       int
	now       func() time.Time
	onMessage func(Message)
}

var _ Handler = (*StatusLine)(nil)

// NewStatusLine creates an empty status line.
func NewStatusLine(onMessage func(Message)) *StatusLine {
	return &StatusLine{now: time.Now, onMessage: onMessage}
}

func (s *StatusLine) Error(msg string)   { s.add(msg, LevelError) }
func (s *StatusLine) Warning(msg string) { s.add(msg, LevelWarning) }
func (s *StatusLine) Info(msg string)    { s.add(msg, LevelInfo) }
func (s *StatusLine) Success(msg string) { s.add(msg, LevelSuccess) }

func (s *StatusLine) add(text string, level Level) {
	s.mu.Lock()
	s.latest = Message{Text: text, Level: level, Timestamp: s.now()}
	s.has = true
	s.seq++
	msg, cb := s.latest, s.onMessage
	s.mu.Unlock()

	if cb != nil {
		cb(msg)
	}
}

// Latest returns the current message, if any.
func (s *StatusLine) Latest() (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.has
}

// Seq counts messages recorded so far. A delayed clear passes the value it
// saw so a newer message is not wiped early.
func (s *StatusLine) Seq() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// ClearIf clears the message when no newer one arrived since seq.
func (s *StatusLine) ClearIf(seq int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.latest = Message{}
	s.has = false
	return true
}
