/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/samber/lo"
)

// sortedKeys gives map conversions a stable order
func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

// ToParameters converts a parameter map to CloudFormation's list format, ordered by key
func ToParameters(parameters map[string]string) []types.Parameter {
	return lo.Map(sortedKeys(parameters), func(key string, _ int) types.Parameter {
		return types.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(parameters[key]),
		}
	})
}

// ToTags converts a tag map to CloudFormation's list format, ordered by key
func ToTags(tags map[string]string) []types.Tag {
	return lo.Map(sortedKeys(tags), func(key string, _ int) types.Tag {
		return types.Tag{
			Key:   aws.String(key),
			Value: aws.String(tags[key]),
		}
	})
}

// ToCapabilities converts capability names to the SDK enum type
func ToCapabilities(capabilities []string) []types.Capability {
	return lo.Map(capabilities, func(c string, _ int) types.Capability {
		return types.Capability(c)
	})
}

// FromParameters rebuilds a parameter map from CloudFormation's list format
func FromParameters(parameters []types.Parameter) map[string]string {
	return lo.SliceToMap(parameters, func(p types.Parameter) (string, string) {
		return aws.ToString(p.ParameterKey), aws.ToString(p.ParameterValue)
	})
}

// FromTags rebuilds a tag map from CloudFormation's list format
func FromTags(tags []types.Tag) map[string]string {
	return lo.SliceToMap(tags, func(t types.Tag) (string, string) {
		return aws.ToString(t.Key), aws.ToString(t.Value)
	})
}

// FromOutputs rebuilds an output map from a stack description
func FromOutputs(outputs []types.Output) map[string]string {
	return lo.SliceToMap(outputs, func(o types.Output) (string, string) {
		return aws.ToString(o.OutputKey), aws.ToString(o.OutputValue)
	})
}
