/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"fmt"
)

// TemplateLoader reads a template and, when variables are given, renders it
type TemplateLoader struct {
	fileSystemResolver FileSystemResolver
	processor          TemplateProcessor
}

// NewTemplateLoader creates a loader backed by the local file system and Sprig rendering
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{
		fileSystemResolver: &DefaultFileSystemResolver{},
		processor:          NewCfnTemplateProcessor(),
	}
}

// SetFileSystemResolver allows injecting a custom file system resolver (for testing)
func (l *TemplateLoader) SetFileSystemResolver(fileSystemResolver FileSystemResolver) {
	l.fileSystemResolver = fileSystemResolver
}

// Load returns the template body. Without variables the file is returned untouched.
func (l *TemplateLoader) Load(templateURI string, variables map[string]string) (string, error) {
	body, err := l.fileSystemResolver.ReadTemplate(templateURI)
	if err != nil {
		return "", err
	}

	if len(variables) == 0 {
		return body, nil
	}

	data := make(map[string]interface{}, len(variables))
	for k, v := range variables {
		data[k] = v
	}

	rendered, err := l.processor.Process(body, data)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateURI, err)
	}
	return rendered, nil
}
