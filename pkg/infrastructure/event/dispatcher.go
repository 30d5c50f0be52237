// Package event provides dispatcher adapters for the procurement core's
// domain events.
package event

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rengerhu/Procurement/pkg/domain/service"
)

// LoggingDispatcher writes every dispatched event as a structured log entry.
// It is the default sink for hosts that only need events to be observable.
type LoggingDispatcher struct {
	logger *logrus.Logger
}

func NewLoggingDispatcher(logger *logrus.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{logger: logger}
}

func (d *LoggingDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(logrus.Fields{
		"event":   event.Type(),
		"payload": fmt.Sprintf("%+v", event),
	}).Info("domain event dispatched")
	return nil
}
