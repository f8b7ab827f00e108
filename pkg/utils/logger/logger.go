// The logger package defines a simple leveled logger with INFO, WARN and
// ERROR prints.
package logger

import (
	"io"
	"log"
)

type Aggregate struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New() returns an Aggregate that writes to out.
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		infoLogger:  log.New(out, "INFO: ", log.LstdFlags),
		warnLogger:  log.New(out, "WARN: ", log.LstdFlags),
		errorLogger: log.New(out, "ERROR: ", log.LstdFlags),
	}
}

// Info() prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.infoLogger.Printf(s, v...)
}

// Warn() prints a WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.warnLogger.Printf(s, v...)
}

// Error() prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.errorLogger.Printf(s, v...)
}
