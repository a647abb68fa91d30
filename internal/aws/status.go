/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress                        StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete                          StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed                            StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress                        StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete                          StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed                            StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress                        StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateCompleteCleanupInProgress         StackStatus = "UPDATE_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateComplete                          StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed                            StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress                StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackCompleteCleanupInProgress StackStatus = "UPDATE_ROLLBACK_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateRollbackComplete                  StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed                    StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress                      StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete                        StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed                          StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress                        StackStatus = "REVIEW_IN_PROGRESS"
	StackStatusImportInProgress                        StackStatus = "IMPORT_IN_PROGRESS"
	StackStatusImportComplete                          StackStatus = "IMPORT_COMPLETE"
	StackStatusImportRollbackInProgress                StackStatus = "IMPORT_ROLLBACK_IN_PROGRESS"
	StackStatusImportRollbackComplete                  StackStatus = "IMPORT_ROLLBACK_COMPLETE"
	StackStatusImportRollbackFailed                    StackStatus = "IMPORT_ROLLBACK_FAILED"
)

// StatusClass partitions stack statuses by what they mean for a running operation
type StatusClass int

const (
	// StatusUnknown is any status outside the known vocabulary. Treated as failure.
	StatusUnknown StatusClass = iota
	StatusInProgress
	StatusSucceeded
	StatusFailed
)

// String returns a lower-case name for the class
func (c StatusClass) String() string {
	switch c {
	case StatusInProgress:
		return "in-progress"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var inProgressStatuses = map[StackStatus]struct{}{
	StackStatusCreateInProgress:                        {},
	StackStatusRollbackInProgress:                      {},
	StackStatusDeleteInProgress:                        {},
	StackStatusUpdateInProgress:                        {},
	StackStatusUpdateCompleteCleanupInProgress:         {},
	StackStatusUpdateRollbackInProgress:                {},
	StackStatusUpdateRollbackCompleteCleanupInProgress: {},
	StackStatusReviewInProgress:                        {},
	StackStatusImportInProgress:                        {},
	StackStatusImportRollbackInProgress:                {},
}

var successfulStatuses = map[StackStatus]struct{}{
	StackStatusCreateComplete: {},
	StackStatusUpdateComplete: {},
	StackStatusImportComplete: {},
	StackStatusDeleteComplete: {},
}

var failedStatuses = map[StackStatus]struct{}{
	StackStatusCreateFailed:           {},
	StackStatusDeleteFailed:           {},
	StackStatusUpdateFailed:           {},
	StackStatusUpdateRollbackComplete: {},
	StackStatusUpdateRollbackFailed:   {},
	StackStatusRollbackComplete:       {},
	StackStatusRollbackFailed:         {},
	StackStatusImportRollbackComplete: {},
	StackStatusImportRollbackFailed:   {},
}

// ClassifyStatus maps a stack status onto its StatusClass
func ClassifyStatus(status StackStatus) StatusClass {
	if _, ok := inProgressStatuses[status]; ok {
		return StatusInProgress
	}
	if _, ok := successfulStatuses[status]; ok {
		return StatusSucceeded
	}
	if _, ok := failedStatuses[status]; ok {
		return StatusFailed
	}
	return StatusUnknown
}

// IsInProgress reports whether the stack is still being operated on
func (s StackStatus) IsInProgress() bool {
	return ClassifyStatus(s) == StatusInProgress
}

// IsSuccessful reports whether the status is a successful terminal state
func (s StackStatus) IsSuccessful() bool {
	return ClassifyStatus(s) == StatusSucceeded
}
