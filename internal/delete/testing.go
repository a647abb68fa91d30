/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package delete

import (
	"context"

	"codeberg.org/orien/cfnsync/internal/stack"
	"github.com/stretchr/testify/mock"
)

// MockDeleter implements Deleter for testing
type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) Delete(ctx context.Context, s *stack.Stack) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
