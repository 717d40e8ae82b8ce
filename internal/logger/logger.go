package logger

import (
	"fmt"
	"log"
)

type Logger struct {
	l *log.Logger
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) logf(level, format string, v ...any) {
	l.l.Printf("[%s]: %s\n", level, fmt.Sprintf(format, v...))
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.logf("Error", format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.logf("Info", format, v...)
}
