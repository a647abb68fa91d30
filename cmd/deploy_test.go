/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"codeberg.org/orien/cfnsync/internal/config"
	"codeberg.org/orien/cfnsync/internal/deploy"
	"codeberg.org/orien/cfnsync/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTemplate = `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Topic:
    Type: AWS::SNS::Topic
`

func useMockDeployer(t *testing.T) *deploy.MockDeployer {
	t.Helper()
	mockDeployer := &deploy.MockDeployer{}
	SetDeployer(mockDeployer)
	t.Cleanup(func() { SetDeployer(nil) })
	return mockDeployer
}

func stackNamed(name string) any {
	return mock.MatchedBy(func(s *stack.Stack) bool {
		return s.Name() == name
	})
}

func TestDeployCommand_Flags(t *testing.T) {
	deployCmd := findCommand(RootCommand(), "deploy")
	require.NotNil(t, deployCmd)

	for _, name := range []string{
		"stack-name", "template-file", "parameter-overrides", "tags", "capabilities",
		"var", "use-change-set", "no-wait", "wait-delay",
	} {
		assert.NotNil(t, deployCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestDeployCommand_RequiresStackNameAndTemplate(t *testing.T) {
	mockDeployer := useMockDeployer(t)

	_, _, err := runCommand(t, "deploy", "--stack-name", "MyStack")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template-file")
	mockDeployer.AssertNotCalled(t, "Deploy")
}

func TestDeployCommand_PassesParametersAndTags(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)

	mockDeployer.On("Deploy", mock.Anything, stackNamed("MyStack"), testTemplate,
		map[string]string{"Hello": "You"},
		map[string]string{"MyTag": "TagValue"},
	).Return(nil)

	_, _, err := runCommand(t, "deploy",
		"--stack-name", "MyStack",
		"--template-file", templatePath,
		"--parameter-overrides", "Hello=You",
		"--tags", "MyTag=TagValue",
	)

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_AcceptsFileURI(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)

	mockDeployer.On("Deploy", mock.Anything, stackNamed("MyStack"), testTemplate,
		map[string]string{}, map[string]string{}).Return(nil)

	_, _, err := runCommand(t, "deploy", "--stack-name", "MyStack", "--template-file", "file://"+templatePath)

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_SetsCapabilitiesAndWaitDelay(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)

	mockDeployer.On("Deploy", mock.Anything,
		mock.MatchedBy(func(s *stack.Stack) bool {
			caps := s.Capabilities()
			return len(caps) == 2 &&
				caps[0] == "CAPABILITY_IAM" &&
				caps[1] == "CAPABILITY_NAMED_IAM" &&
				s.WaitDelay().Seconds() == 30
		}),
		testTemplate, mock.Anything, mock.Anything,
	).Return(nil)

	_, _, err := runCommand(t, "deploy",
		"--stack-name", "MyStack",
		"--template-file", templatePath,
		"--capabilities", "CAPABILITY_IAM,CAPABILITY_NAMED_IAM",
		"--wait-delay", "30s",
	)

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_MergesConfiguredTags(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)
	configPath := writeFile(t, "cfn-sync.yaml", `
tags:
  Team: platform
  Env: dev
`)

	mockDeployer.On("Deploy", mock.Anything, stackNamed("MyStack"), testTemplate,
		map[string]string{},
		map[string]string{"Team": "platform", "Env": "prod"},
	).Return(nil)

	_, _, err := runCommand(t, "deploy",
		"--config", configPath,
		"--stack-name", "MyStack",
		"--template-file", templatePath,
		"--tags", "Env=prod",
	)

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_RendersTemplateVariables(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml.tmpl", `Description: {{ .Env | upper }} stack`)

	mockDeployer.On("Deploy", mock.Anything, stackNamed("MyStack"), "Description: PROD stack",
		mock.Anything, mock.Anything).Return(nil)

	_, _, err := runCommand(t, "deploy",
		"--stack-name", "MyStack",
		"--template-file", templatePath,
		"--var", "Env=prod",
	)

	require.NoError(t, err)
	mockDeployer.AssertExpectations(t)
}

func TestDeployCommand_InvalidParameter(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)

	_, _, err := runCommand(t, "deploy",
		"--stack-name", "MyStack",
		"--template-file", templatePath,
		"--parameter-overrides", "Hello",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --parameter-overrides")
	mockDeployer.AssertNotCalled(t, "Deploy")
}

func TestDeployCommand_MissingTemplate(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)

	_, _, err := runCommand(t, "deploy", "--stack-name", "MyStack", "--template-file", "missing.yaml")

	require.Error(t, err)
	mockDeployer.AssertNotCalled(t, "Deploy")
}

func TestDeployCommand_DeployerError(t *testing.T) {
	useMockClient(t)
	mockDeployer := useMockDeployer(t)
	templatePath := writeFile(t, "stack.yaml", testTemplate)

	mockDeployer.On("Deploy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&deploy.DeploymentFailedError{StackName: "MyStack", Status: "UPDATE_ROLLBACK_COMPLETE"})

	_, _, err := runCommand(t, "deploy", "--stack-name", "MyStack", "--template-file", templatePath)

	require.Error(t, err)
	var failed *deploy.DeploymentFailedError
	assert.True(t, errors.As(err, &failed))
	assert.Contains(t, err.Error(), "error deploying stack MyStack")
}

func TestGetDeployer_SelectsStrategy(t *testing.T) {
	sess := &session{config: config.Default()}

	assert.IsType(t, &deploy.DirectDeployer{}, getDeployer(sess, deploy.DefaultOptions(), false))
	assert.IsType(t, &deploy.ChangeSetDeployer{}, getDeployer(sess, deploy.DefaultOptions(), true))
}
