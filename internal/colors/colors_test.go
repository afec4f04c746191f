package colors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, msg string, args ...any) {
	r.lines = append(r.lines, fmt.Sprint(append([]any{level, msg}, args...)...))
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug ", msg, args...) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info ", msg, args...) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn ", msg, args...) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error ", msg, args...) }

func TestOutputStreams(t *testing.T) {
	tests := []struct {
		name     string
		print    func(...string)
		toStderr bool
		prefix   string
		color    string
	}{
		{"error", Error, true, "Error:", Red},
		{"warning", Warning, true, "Warning:", Yellow},
		{"success", Success, false, checkmark, Green},
		{"info", Info, false, "", Blue},
		{"log info", LogInfo, true, "", Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := capture(t)
			tt.print("something", "happened")

			got, other := out.String(), errOut.String()
			if tt.toStderr {
				got, other = other, got
			}
			assert.Empty(t, other)
			assert.Contains(t, got, "something happened")
			assert.Contains(t, got, tt.prefix)
			assert.Contains(t, got, tt.color)
		})
	}
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := capture(t)
	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
	assert.True(t, DebugEnabled())
}

func TestMirrorsToLogger(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })

	Error("bad")
	Warning("careful")
	Success("done")

	assert.Equal(t, []string{"error bad", "warn careful", "info donetypesuccess"}, rec.lines)
}

func TestColorConstants(t *testing.T) {
	assert.Equal(t, "\033[0;31m", Red)
	assert.Equal(t, "\033[0;32m", Green)
	assert.Equal(t, "\033[0m", Reset)
}
