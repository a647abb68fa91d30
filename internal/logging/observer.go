/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package logging

import (
	"context"
	"log/slog"

	"codeberg.org/orien/cfnsync/internal/aws"
)

// EventFormatter renders a stack event as a single line
type EventFormatter interface {
	Event(event aws.StackEvent) string
}

// EventObserver logs each stack event it receives at info level
type EventObserver struct {
	logger    *slog.Logger
	formatter EventFormatter
}

// NewEventObserver creates an observer. A nil formatter logs events unstyled.
func NewEventObserver(logger *slog.Logger, formatter EventFormatter) *EventObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventObserver{logger: logger, formatter: formatter}
}

// RecordEvent logs the event
func (o *EventObserver) RecordEvent(event aws.StackEvent) {
	line := event.String()
	if o.formatter != nil {
		line = o.formatter.Event(event)
	}

	if !o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Info(line)
		return
	}

	o.logger.Info(line,
		"resource_type", event.ResourceType,
		"timestamp", event.Timestamp,
	)
}
