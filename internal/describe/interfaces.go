/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/stack"
)

// Describer defines the interface for retrieving detailed stack information
type Describer interface {
	Describe(ctx context.Context, s *stack.Stack) (*StackDescription, error)
}

// StackDescription contains comprehensive information about a CloudFormation stack
type StackDescription struct {
	// Basic stack information
	Name         string
	Status       aws.StackStatus
	StatusReason string
	StackID      string
	CreatedTime  time.Time
	UpdatedTime  *time.Time
	Description  string

	// Stack configuration
	Parameters   map[string]string
	Outputs      map[string]string
	Tags         map[string]string
	Capabilities []string

	// Additional metadata
	Region string
}
