/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package stack

import (
	"context"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
)

// Observer receives stack events as the waiter discovers them
type Observer interface {
	RecordEvent(event aws.StackEvent)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(event aws.StackEvent)

// RecordEvent calls f(event)
func (f ObserverFunc) RecordEvent(event aws.StackEvent) {
	f(event)
}

// NopObserver discards events
type NopObserver struct{}

// RecordEvent does nothing
func (NopObserver) RecordEvent(aws.StackEvent) {}

// Sleeper pauses between polls
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d)
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper blocks on a real timer, returning early if ctx is cancelled
type TimerSleeper struct{}

// Sleep waits for d or for ctx to be done
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Waiter polls a stack until its status leaves the in-progress set.
// There is deliberately no timeout: CloudFormation decides when an operation ends.
type Waiter struct {
	sleeper  Sleeper
	observer Observer
}

// WaiterOption configures a Waiter
type WaiterOption func(*Waiter)

// WithSleeper replaces the real timer, typically in tests
func WithSleeper(s Sleeper) WaiterOption {
	return func(w *Waiter) {
		if s != nil {
			w.sleeper = s
		}
	}
}

// WithObserver sets the receiver of newly observed events
func WithObserver(o Observer) WaiterOption {
	return func(w *Waiter) {
		if o != nil {
			w.observer = o
		}
	}
}

// NewWaiter creates a waiter using a real timer and no observer
func NewWaiter(opts ...WaiterOption) *Waiter {
	w := &Waiter{
		sleeper:  TimerSleeper{},
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Wait blocks until the stack reaches a status outside the in-progress set.
// The event preceding the wait is reported first, then each new event in
// chronological order. Any API error aborts the wait.
func (w *Waiter) Wait(ctx context.Context, s *Stack) error {
	status, err := s.Status(ctx)
	if err != nil {
		return err
	}

	log := NewEventLog(s)
	latest, err := log.Baseline(ctx)
	if err != nil {
		return err
	}
	w.emit(latest)

	for aws.ClassifyStatus(status) == aws.StatusInProgress {
		if err := w.sleeper.Sleep(ctx, s.WaitDelay()); err != nil {
			return err
		}

		events, err := log.Poll(ctx)
		if err != nil {
			return err
		}
		w.emit(events)

		status, err = s.Status(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Waiter) emit(events []aws.StackEvent) {
	for _, e := range events {
		w.observer.RecordEvent(e)
	}
}
