// Package slog provides logging decorators for shelf services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shelf"
)

// Ensure LoggingNavigator implements shelf.Navigator.
var _ shelf.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator and logs every rendered view.
type LoggingNavigator struct {
	next   shelf.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next shelf.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// OpenRoot delegates to the wrapped navigator and logs the view.
func (n *LoggingNavigator) OpenRoot() (v *shelf.View) {
	defer n.log("open root", time.Now(), &v)
	return n.next.OpenRoot()
}

// HandleSearch delegates to the wrapped navigator and logs the view.
func (n *LoggingNavigator) HandleSearch(query string) (v *shelf.View) {
	defer n.log("search", time.Now(), &v, "query", query)
	return n.next.HandleSearch(query)
}

// HandleAction delegates to the wrapped navigator and logs the view.
func (n *LoggingNavigator) HandleAction(payload string) (v *shelf.View) {
	defer n.log("action", time.Now(), &v, "payload", payload)
	return n.next.HandleAction(payload)
}

// OpenDirectory delegates to the wrapped navigator and logs the view.
func (n *LoggingNavigator) OpenDirectory() (v *shelf.View) {
	defer n.log("open directory", time.Now(), &v)
	return n.next.OpenDirectory()
}

// log records the outcome of an operation. Error views are logged at warn
// level with their code.
func (n *LoggingNavigator) log(op string, begin time.Time, v **shelf.View, args ...any) {
	view := *v
	args = append(args, "duration", time.Since(begin))
	if view == nil {
		n.logger.Error(op, args...)
		return
	}
	args = append(args, "kind", string(view.Kind), "buttons", len(view.Buttons))
	if view.Code != "" {
		args = append(args, "code", view.Code, "message", view.Text)
		n.logger.Warn(op, args...)
		return
	}
	n.logger.Info(op, args...)
}
