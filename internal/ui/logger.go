package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrSubtle  = color.New(color.FgWhite)
	clrAccent  = color.New(color.FgCyan, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Logger prints timestamped status lines.
type Logger struct {
	out io.Writer
	now func() time.Time
}

func New(out io.Writer) *Logger {
	return &Logger{out: out, now: time.Now}
}

// Default writes to color.Output, which handles Windows consoles and NO_COLOR.
func Default() *Logger {
	return New(color.Output)
}

func Discard() *Logger {
	return New(io.Discard)
}

func (l *Logger) line(icon, msg string) {
	ts := clrDim.Sprint(l.now().Format("15:04:05"))
	fmt.Fprintf(l.out, "%s  %s  %s\n", ts, icon, msg)
}

func (l *Logger) Info(format string, args ...any) {
	l.line(clrInfo.Sprint("ℹ"), clrSubtle.Sprintf(format, args...))
}

func (l *Logger) Success(format string, args ...any) {
	l.line(clrSuccess.Sprint("✔"), clrSuccess.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.line(clrWarning.Sprint("⚠"), clrWarning.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.line(clrError.Sprint("✖"), clrError.Sprintf(format, args...))
}

// Step logs one produced artifact.
func (l *Logger) Step(label, value string) {
	l.line(clrDim.Sprint("→"), fmt.Sprintf("%s %s", clrDim.Sprint(label+":"), clrAccent.Sprint(value)))
}
