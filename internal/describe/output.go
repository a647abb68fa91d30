/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"codeberg.org/orien/cfnsync/internal/output"
	"github.com/samber/lo"
)

// FormatStackDescription formats stack information for display
func FormatStackDescription(desc *StackDescription, styles *output.Styles) string {
	if styles == nil {
		styles = output.NewStyles(false)
	}

	var out strings.Builder

	fmt.Fprintf(&out, "Stack: %s\n", desc.Name)
	fmt.Fprintf(&out, "Status: %s\n", styles.Status(string(desc.Status)))
	if desc.StatusReason != "" {
		fmt.Fprintf(&out, "Reason: %s\n", desc.StatusReason)
	}
	if desc.Region != "" {
		fmt.Fprintf(&out, "Region: %s\n", desc.Region)
	}
	if !desc.CreatedTime.IsZero() {
		fmt.Fprintf(&out, "Created: %s\n", formatTime(desc.CreatedTime))
	}
	if desc.UpdatedTime != nil {
		fmt.Fprintf(&out, "Updated: %s\n", formatTime(*desc.UpdatedTime))
	}
	if desc.StackID != "" && desc.StackID != desc.Name {
		fmt.Fprintf(&out, "Stack ID: %s\n", desc.StackID)
	}
	if desc.Description != "" {
		fmt.Fprintf(&out, "Description: %s\n", desc.Description)
	}
	if len(desc.Capabilities) > 0 {
		fmt.Fprintf(&out, "Capabilities: %s\n", strings.Join(desc.Capabilities, ", "))
	}

	writeSection(&out, "Parameters", desc.Parameters, styles)
	writeSection(&out, "Outputs", desc.Outputs, styles)
	writeSection(&out, "Tags", desc.Tags, styles)

	return out.String()
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeSection writes a titled, key-sorted block of key-value pairs
func writeSection(out *strings.Builder, title string, m map[string]string, styles *output.Styles) {
	if len(m) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s:\n", title)

	keys := lo.Keys(m)
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s: %s\n", styles.Key.Render(key), m[key])
	}
}
