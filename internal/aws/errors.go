/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrorKind is the interpretation of a CloudFormation error that callers branch on
type ErrorKind int

const (
	// ErrorKindOther is any error not recognised as benign
	ErrorKindOther ErrorKind = iota
	// ErrorKindNotFound means the addressed stack does not exist
	ErrorKindNotFound
	// ErrorKindNoChanges means the requested mutation would not change anything
	ErrorKindNoChanges
)

// String returns a readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not-found"
	case ErrorKindNoChanges:
		return "no-changes"
	default:
		return "other"
	}
}

// Default message fragments returned by CloudFormation
const (
	DefaultNotFoundPattern        = "does not exist"
	DefaultNoUpdatesPattern       = "No updates are to be performed"
	DefaultChangeSetNoChangesText = "didn't contain changes"
)

// ErrorClassifier translates CloudFormation error text into an ErrorKind.
// CloudFormation reports these conditions only as ValidationError messages, so
// matching is by substring. All message matching in cfn-sync goes through here.
type ErrorClassifier struct {
	// NotFound fragments identify a describe call against a missing stack
	NotFound []string
	// NoUpdates fragments identify an UpdateStack call with nothing to do
	NoUpdates []string
	// NoChanges fragments identify a FAILED change set that contained no changes
	NoChanges []string
}

// DefaultErrorClassifier returns a classifier using CloudFormation's current wording
func DefaultErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{
		NotFound:  []string{DefaultNotFoundPattern},
		NoUpdates: []string{DefaultNoUpdatesPattern},
		NoChanges: []string{DefaultChangeSetNoChangesText, DefaultNoUpdatesPattern},
	}
}

// Classify returns the kind of a non-nil error raised by a stack API call
func (c *ErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return ErrorKindOther
	}

	message := ErrorMessage(err)
	switch {
	case containsAny(message, c.NotFound):
		return ErrorKindNotFound
	case containsAny(message, c.NoUpdates):
		return ErrorKindNoChanges
	default:
		return ErrorKindOther
	}
}

// ClassifyChangeSetReason returns the kind of a FAILED change set's status reason
func (c *ErrorClassifier) ClassifyChangeSetReason(reason string) ErrorKind {
	if containsAny(reason, c.NoChanges) {
		return ErrorKindNoChanges
	}
	return ErrorKindOther
}

// IsNotFound reports whether err means the stack does not exist
func (c *ErrorClassifier) IsNotFound(err error) bool {
	return err != nil && c.Classify(err) == ErrorKindNotFound
}

// IsNoChanges reports whether err means an update had nothing to do
func (c *ErrorClassifier) IsNoChanges(err error) bool {
	return err != nil && c.Classify(err) == ErrorKindNoChanges
}

// ErrorMessage extracts the service message from an SDK error, falling back to Error()
func ErrorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}
