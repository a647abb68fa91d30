/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package describe reads the live state of a stack for display.
package describe

import (
	"context"
	"time"

	"codeberg.org/orien/cfnsync/internal/stack"
)

// StackDescriber implements the Describer interface through a stack handle
type StackDescriber struct {
	region string
}

// NewStackDescriber creates a describer that labels descriptions with region
func NewStackDescriber(region string) *StackDescriber {
	return &StackDescriber{region: region}
}

// Describe retrieves comprehensive information about a CloudFormation stack
func (d *StackDescriber) Describe(ctx context.Context, s *stack.Stack) (*StackDescription, error) {
	info, err := s.Describe(ctx)
	if err != nil {
		return nil, err
	}

	return &StackDescription{
		Name:         info.Name,
		Status:       info.Status,
		StatusReason: info.StatusReason,
		StackID:      info.StackID,
		CreatedTime:  dereferenceTime(info.CreatedTime),
		UpdatedTime:  info.UpdatedTime,
		Description:  info.Description,
		Parameters:   ensureMap(info.Parameters),
		Outputs:      ensureMap(info.Outputs),
		Tags:         ensureMap(info.Tags),
		Capabilities: info.Capabilities,
		Region:       d.region,
	}, nil
}

func dereferenceTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func ensureMap(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}
