/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package stack

import (
	"context"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
	"github.com/stretchr/testify/mock"
)

// MockObserver implements Observer for testing
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) RecordEvent(event aws.StackEvent) {
	m.Called(event)
}

// RecordingSleeper implements Sleeper without blocking, remembering each requested delay
type RecordingSleeper struct {
	Delays []time.Duration
}

func (r *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.Delays = append(r.Delays, d)
	return ctx.Err()
}
