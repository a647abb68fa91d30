/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package resolve turns a template reference and template variables into the
// template body submitted to CloudFormation.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileSystemResolver reads a template from a path or file:// URI
type FileSystemResolver interface {
	ReadTemplate(templateURI string) (string, error)
}

// DefaultFileSystemResolver reads templates from the local file system
type DefaultFileSystemResolver struct{}

// ReadTemplate reads template content from a file:// URI or a plain path
func (fsr *DefaultFileSystemResolver) ReadTemplate(templateURI string) (string, error) {
	filePath, err := parseFileURI(templateURI)
	if err != nil {
		return "", fmt.Errorf("invalid template URI %s: %w", templateURI, err)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}
	return string(content), nil
}

// parseFileURI extracts the file path from a file:// URI. Any other scheme is rejected;
// a value without a scheme is a path.
func parseFileURI(uri string) (string, error) {
	if uri == "" {
		return "", errors.New("template location is empty")
	}

	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		if path == "" {
			return "", errors.New("file URI has no path")
		}
		return path, nil
	}

	if scheme, _, ok := strings.Cut(uri, "://"); ok {
		return "", fmt.Errorf("unsupported scheme %s", scheme)
	}

	return uri, nil
}
