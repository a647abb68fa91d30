/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateProcessor renders a CloudFormation template with variables
type TemplateProcessor interface {
	Process(templateContent string, variables map[string]interface{}) (string, error)
}

// CfnTemplateProcessor renders with text/template and the Sprig function library.
// A variable referenced by the template but not supplied is an error.
type CfnTemplateProcessor struct{}

// NewCfnTemplateProcessor creates a new CloudFormation template processor
func NewCfnTemplateProcessor() *CfnTemplateProcessor {
	return &CfnTemplateProcessor{}
}

// Process renders templateContent against variables
func (tp *CfnTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("cloudformation").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
