/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"context"

	"codeberg.org/orien/cfnsync/internal/stack"
	"github.com/stretchr/testify/mock"
)

// MockDeployer implements Deployer for testing
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) error {
	args := m.Called(ctx, s, templateBody, parameters, tags)
	return args.Error(0)
}
