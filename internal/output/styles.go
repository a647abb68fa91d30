/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package output styles stack statuses and events for the terminal.
package output

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"codeberg.org/orien/cfnsync/internal/aws"
	"golang.org/x/term"
)

// Styles holds one style per status class
type Styles struct {
	InProgress lipgloss.Style
	Succeeded  lipgloss.Style
	Failed     lipgloss.Style
	Unknown    lipgloss.Style
	Key        lipgloss.Style
	Subtle     lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates the status palette. Without colour every style renders text unchanged.
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		plain := lipgloss.NewStyle()
		s.InProgress = plain
		s.Succeeded = plain
		s.Failed = plain
		s.Unknown = plain
		s.Key = plain
		s.Subtle = plain
		return s
	}

	s.InProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.Succeeded = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Failed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.Unknown = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	s.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return s
}

// ForStatus picks the style for a stack or resource status
func (s *Styles) ForStatus(status string) lipgloss.Style {
	switch aws.ClassifyStatus(aws.StackStatus(status)) {
	case aws.StatusInProgress:
		return s.InProgress
	case aws.StatusSucceeded:
		return s.Succeeded
	case aws.StatusFailed:
		return s.Failed
	default:
		return s.Unknown
	}
}

// Status renders a status in its class colour
func (s *Styles) Status(status string) string {
	return s.ForStatus(status).Render(status)
}

// Event renders "<logical id> - <status>[ - <reason>]" with the status coloured
func (s *Styles) Event(event aws.StackEvent) string {
	line := fmt.Sprintf("%s - %s", s.Key.Render(event.LogicalResourceId), s.Status(event.ResourceStatus))
	if event.ResourceStatusReason != "" {
		line += " - " + s.Subtle.Render(event.ResourceStatusReason)
	}
	return line
}

// ShouldUseColour reports whether output written to f should be coloured
func ShouldUseColour(f *os.File) bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if t := os.Getenv("TERM"); t == "dumb" || t == "" {
		return false
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}
