package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// Logger writes one colored line per entry. Report output belongs on
// stdout, so log lines go to stderr by default.
type Logger struct {
	out      io.Writer
	minLevel LogLevel
	now      func() time.Time
}

func New() *Logger {
	return NewWithWriter(os.Stderr)
}

func NewWithWriter(w io.Writer) *Logger {
	return &Logger{out: w, minLevel: INFO, now: time.Now}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.minLevel = level
}

func (l *Logger) log(level LogLevel, category, message string) {
	if level < l.minLevel {
		return
	}
	levelColor := levelColors(level)
	timeStr := color.New(color.FgBlue).Sprint(l.now().Format("15:04:05"))
	levelStr := levelColor.Sprintf("%-5s", levelToString(level))
	categoryStr := levelColor.Add(color.Bold).Sprintf("[%-8s]", strings.ToUpper(category))
	fmt.Fprintf(l.out, "%s %s %s %s\n", timeStr, levelStr, categoryStr, message)
}

func levelColors(level LogLevel) *color.Color {
	switch level {
	case DEBUG:
		return color.New(color.FgCyan)
	case INFO:
		return color.New(color.FgGreen)
	case WARN:
		return color.New(color.FgYellow)
	case ERROR, FATAL:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "INFO"
	}
}

func (l *Logger) Debug(category, message string) {
	l.log(DEBUG, category, message)
}

func (l *Logger) Info(category, message string) {
	l.log(INFO, category, message)
}

func (l *Logger) Warn(category, message string) {
	l.log(WARN, category, message)
}

func (l *Logger) Error(category, message string) {
	l.log(ERROR, category, message)
}

func (l *Logger) Fatal(category, message string) {
	l.log(FATAL, category, message)
	os.Exit(1)
}
