package utils

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the global logger. Stdout carries protocol messages, so logs always go to stderr.
func SetupLogging(config *entities.CarbonjConfig) error {
	logrus.SetOutput(os.Stderr)

	if os.Getenv("CARBONJ_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		level, err := logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return fmt.Errorf("Invalid log level: %w", err)
		}
		logrus.SetLevel(level)
	}

	if config.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if config.Journal {
		if !journal.Enabled() {
			logrus.Warn("Journald is not available, skipping the journal hook")
		} else {
			logrus.AddHook(&JournalHook{Identifier: "carbonj"})
		}
	}

	return nil
}

var journalPriorities = map[logrus.Level]journal.Priority{
	logrus.PanicLevel: journal.PriEmerg,
	logrus.FatalLevel: journal.PriCrit,
	logrus.ErrorLevel: journal.PriErr,
	logrus.WarnLevel:  journal.PriWarning,
	logrus.InfoLevel:  journal.PriInfo,
	logrus.DebugLevel: journal.PriDebug,
	logrus.TraceLevel: journal.PriDebug,
}

// JournalHook forwards logrus entries to the systemd journal.
type JournalHook struct {
	Identifier string
}

func (h *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *JournalHook) Fire(entry *logrus.Entry) error {
	return journal.Send(entry.Message, journalPriorities[entry.Level], JournalVars(h.Identifier, entry.Data))
}

// JournalVars converts logrus fields to journal variables, which must be upper case and must not start with an underscore.
func JournalVars(identifier string, fields logrus.Fields) map[string]string {
	vars := make(map[string]string, len(fields)+1)
	for key, value := range fields {
		name := journalVarName(key)
		if name == "" {
			continue
		}
		vars[name] = fmt.Sprint(value)
	}
	if identifier != "" {
		vars["SYSLOG_IDENTIFIER"] = identifier
	}
	return vars
}

func journalVarName(key string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, key)
	return strings.TrimLeft(name, "_")
}
