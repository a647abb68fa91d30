/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package stack

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedEvents struct {
	events []aws.StackEvent
}

func (r *recordedEvents) RecordEvent(event aws.StackEvent) {
	r.events = append(r.events, event)
}

func (r *recordedEvents) ids() []string {
	return eventIDs(r.events)
}

// setupWaitTest expects one describe per status, in order, with a constant event log
func setupWaitTest(ctx context.Context, mockClient *aws.MockCloudFormationClient, statuses ...aws.StackStatus) {
	for _, status := range statuses {
		mockClient.On("DescribeStacks", ctx, mock.Anything).
			Return(aws.NewTestDescribeStacksOutput("MyStack", status), nil).Once()
	}
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(
		aws.NewTestStackEvent("e1", "MyStack", "UPDATE_IN_PROGRESS"),
	), nil)
}

func TestWait_DelayPerIteration(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected time.Duration
	}{
		{name: "default", expected: 5 * time.Second},
		{name: "30 seconds", opts: []Option{WithWaitDelay(30 * time.Second)}, expected: 30 * time.Second},
		{name: "300 seconds", opts: []Option{WithWaitDelay(300 * time.Second)}, expected: 300 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockClient := &aws.MockCloudFormationClient{}
			sleeper := &RecordingSleeper{}
			s := New(mockClient, "MyStack", tt.opts...)

			setupWaitTest(ctx, mockClient, aws.StackStatusUpdateInProgress, aws.StackStatusUpdateComplete)

			err := NewWaiter(WithSleeper(sleeper)).Wait(ctx, s)

			require.NoError(t, err)
			assert.Equal(t, []time.Duration{tt.expected}, sleeper.Delays)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestWait_KeepsPollingWhileInProgress(t *testing.T) {
	ctx := context.Background()
	mockClient := &aws.MockCloudFormationClient{}
	sleeper := &RecordingSleeper{}
	s := New(mockClient, "MyStack", WithWaitDelay(30*time.Second))

	setupWaitTest(ctx, mockClient,
		aws.StackStatusCreateInProgress,
		aws.StackStatusCreateInProgress,
		aws.StackStatusRollbackInProgress,
		aws.StackStatusRollbackComplete,
	)

	err := NewWaiter(WithSleeper(sleeper)).Wait(ctx, s)

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{30 * time.Second, 30 * time.Second, 30 * time.Second}, sleeper.Delays)
	mockClient.AssertNumberOfCalls(t, "DescribeStacks", 4)
	mockClient.AssertNumberOfCalls(t, "DescribeStackEvents", 4)
}

func TestWait_TerminalStatusReturnsImmediately(t *testing.T) {
	for _, status := range []aws.StackStatus{
		aws.StackStatusCreateComplete,
		aws.StackStatusUpdateRollbackComplete,
		aws.StackStatusDeleteFailed,
		aws.StackStatus("SOMETHING_NEW"),
	} {
		t.Run(string(status), func(t *testing.T) {
			ctx := context.Background()
			mockClient := &aws.MockCloudFormationClient{}
			sleeper := &RecordingSleeper{}
			observer := &recordedEvents{}
			s := New(mockClient, "MyStack")

			setupWaitTest(ctx, mockClient, status)

			err := NewWaiter(WithSleeper(sleeper), WithObserver(observer)).Wait(ctx, s)

			require.NoError(t, err)
			assert.Empty(t, sleeper.Delays)
			assert.Equal(t, []string{"e1"}, observer.ids())
		})
	}
}

func TestWait_StreamsNewEventsChronologically(t *testing.T) {
	ctx := context.Background()
	mockClient := &aws.MockCloudFormationClient{}
	observer := &recordedEvents{}
	s := New(mockClient, "MyStack")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusUpdateInProgress), nil).Once()
	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusUpdateComplete), nil).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(
		aws.NewTestStackEvent("e2", "MyStack", "UPDATE_IN_PROGRESS"),
		aws.NewTestStackEvent("e1", "MyStack", "CREATE_COMPLETE"),
	), nil).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(
		aws.NewTestStackEvent("e4", "MyStack", "UPDATE_COMPLETE"),
		aws.NewTestStackEvent("e3", "MyBucket", "UPDATE_COMPLETE"),
		aws.NewTestStackEvent("e2", "MyStack", "UPDATE_IN_PROGRESS"),
		aws.NewTestStackEvent("e1", "MyStack", "CREATE_COMPLETE"),
	), nil).Once()

	err := NewWaiter(WithSleeper(&RecordingSleeper{}), WithObserver(observer)).Wait(ctx, s)

	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e3", "e4"}, observer.ids())
	mockClient.AssertExpectations(t)
}

func TestWait_NoEvents(t *testing.T) {
	ctx := context.Background()
	mockClient := &aws.MockCloudFormationClient{}
	observer := &MockObserver{}
	s := New(mockClient, "MyStack")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusDeleteComplete), nil)
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(), nil)

	err := NewWaiter(WithObserver(observer)).Wait(ctx, s)

	require.NoError(t, err)
	observer.AssertNotCalled(t, "RecordEvent", mock.Anything)
}

func TestWait_DescribeErrorAborts(t *testing.T) {
	ctx := context.Background()
	mockClient := &aws.MockCloudFormationClient{}
	sleeper := &RecordingSleeper{}
	s := New(mockClient, "MyStack")
	apiErr := errors.New("Throttling: Rate exceeded")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusUpdateInProgress), nil).Once()
	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, apiErr).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(), nil)

	err := NewWaiter(WithSleeper(sleeper)).Wait(ctx, s)

	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Len(t, sleeper.Delays, 1)
}

func TestWait_EventsErrorAborts(t *testing.T) {
	ctx := context.Background()
	mockClient := &aws.MockCloudFormationClient{}
	s := New(mockClient, "MyStack")
	apiErr := errors.New("AccessDenied")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusUpdateInProgress), nil).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(nil, apiErr)

	err := NewWaiter(WithSleeper(&RecordingSleeper{})).Wait(ctx, s)

	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	mockClient.AssertNumberOfCalls(t, "DescribeStacks", 1)
}

func TestWait_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mockClient := &aws.MockCloudFormationClient{}
	s := New(mockClient, "MyStack")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusDeleteInProgress), nil).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(), nil).Once()
	cancel()

	err := NewWaiter(WithSleeper(&RecordingSleeper{})).Wait(ctx, s)

	assert.ErrorIs(t, err, context.Canceled)
	mockClient.AssertExpectations(t)
}

func TestWait_InterruptedWhileSleeping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mockClient := &aws.MockCloudFormationClient{}
	s := New(mockClient, "MyStack")

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(aws.NewTestDescribeStacksOutput("MyStack", aws.StackStatusCreateInProgress), nil).Once()
	mockClient.On("DescribeStackEvents", ctx, mock.Anything).Return(aws.NewTestStackEventsOutput(
		aws.NewTestStackEvent("e1", "MyStack", "CREATE_IN_PROGRESS"),
	), nil).Once()

	var slept []time.Duration
	sleeper := SleeperFunc(func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		cancel()
		return ctx.Err()
	})
	var seen []string
	observer := ObserverFunc(func(event aws.StackEvent) {
		seen = append(seen, event.EventId)
	})

	err := NewWaiter(WithSleeper(sleeper), WithObserver(observer)).Wait(ctx, s)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []time.Duration{DefaultWaitDelay}, slept)
	assert.Equal(t, []string{"e1"}, seen)
	mockClient.AssertExpectations(t)
}

func TestTimerSleeper(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := TimerSleeper{}.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)

	err = TimerSleeper{}.Sleep(context.Background(), time.Millisecond)
	assert.NoError(t, err)
}
