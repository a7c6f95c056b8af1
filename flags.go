// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"fmt"
	"strings"
)

// CompileFlags are the D3DCOMPILE_* options passed as Flags1.
// Unset bits select the compiler's default behavior.
type CompileFlags uint32

const (
	// Debug inserts debug file/line/type/symbol information.
	Debug CompileFlags = 1 << 0

	// SkipValidation skips validation of the generated code.
	SkipValidation CompileFlags = 1 << 1

	// SkipOptimization skips optimization steps. Not recommended for release builds.
	SkipOptimization CompileFlags = 1 << 2

	// PackMatrixRowMajor packs matrices in row-major order unless declared otherwise.
	PackMatrixRowMajor CompileFlags = 1 << 3

	// PackMatrixColumnMajor packs matrices in column-major order unless declared otherwise.
	PackMatrixColumnMajor CompileFlags = 1 << 4

	// PartialPrecision performs computations at partial precision.
	PartialPrecision CompileFlags = 1 << 5

	// ForceVSSoftwareNoOpt compiles vertex shaders for the next highest software target.
	ForceVSSoftwareNoOpt CompileFlags = 1 << 6

	// ForcePSSoftwareNoOpt compiles pixel shaders for the next highest software target.
	ForcePSSoftwareNoOpt CompileFlags = 1 << 7

	// NoPreshader disables preshaders in effects.
	NoPreshader CompileFlags = 1 << 8

	// AvoidFlowControl avoids flow-control constructs where possible.
	AvoidFlowControl CompileFlags = 1 << 9

	// PreferFlowControl prefers flow-control constructs where possible.
	PreferFlowControl CompileFlags = 1 << 10

	// EnableStrictness forbids deprecated syntax.
	EnableStrictness CompileFlags = 1 << 11

	// EnableBackwardsCompatibility allows older shaders to compile to 5_0 targets.
	EnableBackwardsCompatibility CompileFlags = 1 << 12

	// IEEEStrictness forces IEEE strictness.
	IEEEStrictness CompileFlags = 1 << 13

	// OptimizationLevel0 selects the lowest optimization level.
	OptimizationLevel0 CompileFlags = 1 << 14

	// OptimizationLevel1 is the default optimization level (no bits set).
	OptimizationLevel1 CompileFlags = 0

	// OptimizationLevel2 selects the second highest optimization level.
	OptimizationLevel2 CompileFlags = (1 << 14) | (1 << 15)

	// OptimizationLevel3 selects the highest optimization level.
	OptimizationLevel3 CompileFlags = 1 << 15

	// WarningsAreErrors treats all warnings as errors.
	WarningsAreErrors CompileFlags = 1 << 18

	// ResourcesMayAlias assumes UAVs and SRVs may alias (SM 5.1).
	ResourcesMayAlias CompileFlags = 1 << 19

	// EnableUnboundedDescriptorTables allows unbounded descriptor tables (SM 5.1).
	EnableUnboundedDescriptorTables CompileFlags = 1 << 20

	// AllResourcesBound asserts all resources are bound for the draw (SM 5.1).
	AllResourcesBound CompileFlags = 1 << 21

	// DebugNameForSource names the PDB after the source file.
	DebugNameForSource CompileFlags = 1 << 22

	// DebugNameForBinary names the PDB after the binary.
	DebugNameForBinary CompileFlags = 1 << 23
)

// optimizationMask covers the two optimization level bits.
const optimizationMask = OptimizationLevel0 | OptimizationLevel3

var compileFlagNames = []struct {
	flag CompileFlags
	name string
}{
	{Debug, "Debug"},
	{SkipValidation, "SkipValidation"},
	{SkipOptimization, "SkipOptimization"},
	{PackMatrixRowMajor, "PackMatrixRowMajor"},
	{PackMatrixColumnMajor, "PackMatrixColumnMajor"},
	{PartialPrecision, "PartialPrecision"},
	{ForceVSSoftwareNoOpt, "ForceVSSoftwareNoOpt"},
	{ForcePSSoftwareNoOpt, "ForcePSSoftwareNoOpt"},
	{NoPreshader, "NoPreshader"},
	{AvoidFlowControl, "AvoidFlowControl"},
	{PreferFlowControl, "PreferFlowControl"},
	{EnableStrictness, "EnableStrictness"},
	{EnableBackwardsCompatibility, "EnableBackwardsCompatibility"},
	{IEEEStrictness, "IEEEStrictness"},
	{WarningsAreErrors, "WarningsAreErrors"},
	{ResourcesMayAlias, "ResourcesMayAlias"},
	{EnableUnboundedDescriptorTables, "EnableUnboundedDescriptorTables"},
	{AllResourcesBound, "AllResourcesBound"},
	{DebugNameForSource, "DebugNameForSource"},
	{DebugNameForBinary, "DebugNameForBinary"},
}

// Has returns true if all bits of flag are set.
func (f CompileFlags) Has(flag CompileFlags) bool {
	return f&flag == flag
}

// OptimizationLevel returns the selected optimization level, 0 through 3.
func (f CompileFlags) OptimizationLevel() int {
	switch f & optimizationMask {
	case OptimizationLevel0:
		return 0
	case OptimizationLevel2:
		return 2
	case OptimizationLevel3:
		return 3
	default:
		return 1
	}
}

// WithOptimizationLevel returns f with its optimization bits replaced by level.
// Levels outside 0-3 select the default level 1.
func (f CompileFlags) WithOptimizationLevel(level int) CompileFlags {
	f &^= optimizationMask
	switch level {
	case 0:
		return f | OptimizationLevel0
	case 2:
		return f | OptimizationLevel2
	case 3:
		return f | OptimizationLevel3
	default:
		return f
	}
}

// String returns a human-readable list of set flags.
// The optimization level is always reported.
func (f CompileFlags) String() string {
	var names []string
	for _, n := range compileFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	names = append(names, optimizationLevelNames[f.OptimizationLevel()])
	return strings.Join(names, ", ")
}

var optimizationLevelNames = [...]string{
	"OptimizationLevel0",
	"OptimizationLevel1",
	"OptimizationLevel2",
	"OptimizationLevel3",
}

// EffectFlags are the D3DCOMPILE_EFFECT_* options passed as Flags2.
type EffectFlags uint32

const (
	// ChildEffect compiles the effect as a child effect for FX 4.x targets.
	ChildEffect EffectFlags = 1 << 0

	// AllowSlowOps allows mutable state in effects, which is slower.
	AllowSlowOps EffectFlags = 1 << 1
)

// Has returns true if all bits of flag are set.
func (f EffectFlags) Has(flag EffectFlags) bool {
	return f&flag == flag
}

// String returns a human-readable list of set flags.
func (f EffectFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f.Has(ChildEffect) {
		names = append(names, "ChildEffect")
	}
	if f.Has(AllowSlowOps) {
		names = append(names, "AllowSlowOps")
	}
	if rest := f &^ (ChildEffect | AllowSlowOps); rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(names, ", ")
}
