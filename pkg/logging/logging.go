// Package logging is a logrus wrapper giving the command entry points
// and rating-search engine structured, field-scoped loggers, mirroring the
// teacher's shared/pkg/logger package. The minute simulator itself
// never logs: it is the hot loop spec.md §1 budgets in microseconds.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the package-level logger from a level name
// ("debug","info","warn","error") and an isDevelopment flag that picks
// a colorized text formatter over JSON.
func Init(level string, isDevelopment bool) *logrus.Logger {
	l := logrus.New()

	if level == "" {
		level = "info"
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(parsed)
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("invalid_level", level).Warn("unknown log level, defaulting to info")
	}

	if isDevelopment {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	}
	l.SetOutput(os.Stdout)

	log = l
	return l
}

// Get returns the package-level logger, lazily initializing it at info
// level if Init was never called.
func Get() *logrus.Logger {
	if log == nil {
		return Init("info", false)
	}
	return log
}

// WithSeason scopes a logger to a season run's correlation ID.
func WithSeason(seasonRunID string) *logrus.Entry {
	return Get().WithField("season_run_id", seasonRunID)
}

// WithSearchRun scopes a logger to a rating-search run's correlation ID.
func WithSearchRun(searchRunID string) *logrus.Entry {
	return Get().WithField("search_run_id", searchRunID)
}

// WithMatch scopes a logger to one fixture within a season run.
func WithMatch(seasonRunID string, week, fixture int) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"season_run_id": seasonRunID,
		"week":          week,
		"fixture":       fixture,
	})
}
