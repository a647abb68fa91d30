/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package stack

import (
	"context"
	"slices"

	"codeberg.org/orien/cfnsync/internal/aws"
	"github.com/samber/lo"
)

// EventLog tails a stack's event log, returning each event at most once
type EventLog struct {
	stack *Stack
	seen  map[string]struct{}
}

// NewEventLog creates an event log for the stack with nothing seen yet
func NewEventLog(s *Stack) *EventLog {
	return &EventLog{
		stack: s,
		seen:  make(map[string]struct{}),
	}
}

// Baseline marks every current event as seen and returns the most recent one, if any
func (l *EventLog) Baseline(ctx context.Context) ([]aws.StackEvent, error) {
	events, err := l.stack.Events(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		l.seen[e.EventId] = struct{}{}
	}

	if len(events) == 0 {
		return nil, nil
	}
	return events[:1], nil
}

// Poll returns events not seen before, oldest first, and marks them seen
func (l *EventLog) Poll(ctx context.Context) ([]aws.StackEvent, error) {
	events, err := l.stack.Events(ctx)
	if err != nil {
		return nil, err
	}

	fresh := lo.Filter(events, func(e aws.StackEvent, _ int) bool {
		_, ok := l.seen[e.EventId]
		return !ok
	})
	slices.Reverse(fresh)

	for _, e := range fresh {
		l.seen[e.EventId] = struct{}{}
	}

	return fresh, nil
}

// Seen reports whether the event ID has already been returned or baselined
func (l *EventLog) Seen(eventID string) bool {
	_, ok := l.seen[eventID]
	return ok
}
