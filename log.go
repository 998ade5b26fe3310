package preopen

import (
	"github.com/sirupsen/logrus"
)

// Level identifies the severity of a log message.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warning
	Error
)

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case Trace:
		return logrus.TraceLevel
	case Debug:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// contextFormatter renders a logrus entry as "[LEVEL context] message",
// where context comes from the entry's "context" field.
type contextFormatter struct{}

func (contextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	context, _ := entry.Data["context"].(string)

	var level string
	switch entry.Level {
	case logrus.TraceLevel:
		level = "TRACE"
	case logrus.DebugLevel:
		level = "DEBUG"
	case logrus.InfoLevel:
		level = "INFO"
	case logrus.WarnLevel:
		level = "WARN"
	default:
		level = "ERROR"
	}

	line := "[" + level + " " + context + "] " + entry.Message + "\n"
	return []byte(line), nil
}

// Log writes a single log line to a fresh Stderr Writer, so that any
// tokens appearing in context or message are translated back into host
// paths before they reach the terminal.
func (m *Mediator) Log(level Level, context, message string) {
	logger := logrus.New()
	logger.SetOutput(m.Stderr())
	logger.SetFormatter(contextFormatter{})
	logger.SetLevel(logrus.TraceLevel)
	logger.WithField("context", context).Log(level.logrusLevel(), message)
}
