// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga/hlsl"
)

// Stage identifies the shader stage part of a target profile.
type Stage uint8

const (
	StageVertex Stage = iota
	StagePixel
	StageGeometry
	StageHull
	StageDomain
	StageCompute
	StageLibrary
	StageEffect
)

var stagePrefixes = [...]string{
	StageVertex:   "vs",
	StagePixel:    "ps",
	StageGeometry: "gs",
	StageHull:     "hs",
	StageDomain:   "ds",
	StageCompute:  "cs",
	StageLibrary:  "lib",
	StageEffect:   "fx",
}

// Prefix returns the profile prefix, e.g. "ps".
func (s Stage) Prefix() string {
	if int(s) < len(stagePrefixes) {
		return stagePrefixes[s]
	}
	return ""
}

// String returns the profile prefix.
func (s Stage) String() string {
	if p := s.Prefix(); p != "" {
		return p
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// ParseStage returns the stage for a profile prefix such as "vs".
func ParseStage(prefix string) (Stage, error) {
	for i, p := range stagePrefixes {
		if p == prefix {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("d3dcompile: unknown shader stage %q", prefix)
}

// Profile builds a target profile such as "vs_5_0" from a stage and shader model.
//
// The legacy compiler wrapped here produces DXBC and accepts shader models
// up to 5.1; use [hlsl.ShaderModel.SupportsDXIL] to detect models it cannot
// compile.
func Profile(stage Stage, sm hlsl.ShaderModel) string {
	return stage.Prefix() + "_" + sm.ProfileSuffix()
}

// ParseShaderModel parses "5_1" or "5.1" into a shader model.
func ParseShaderModel(s string) (hlsl.ShaderModel, error) {
	suffix := strings.ReplaceAll(s, ".", "_")
	for sm := hlsl.ShaderModel5_0; sm <= hlsl.ShaderModel6_7; sm++ {
		if sm.ProfileSuffix() == suffix {
			return sm, nil
		}
	}
	return 0, fmt.Errorf("d3dcompile: unknown shader model %q", s)
}
