// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/d3dcompile"
	"github.com/gogpu/d3dcompile/translate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// ShaderCompiler is the subset of *d3dcompile.Compiler the command uses.
type ShaderCompiler interface {
	CompileFromFile(path string, opts *d3dcompile.Options) ([]byte, *d3dcompile.Artifact, error)
	CompileFromFileToFile(path, out string, opts *d3dcompile.Options) (*d3dcompile.Artifact, error)
	Compile(source []byte, sourceName string, opts *d3dcompile.Options) ([]byte, *d3dcompile.Artifact, error)
}

const (
	configF            = "config"
	outputF            = "output"
	entryF             = "entry"
	targetF            = "target"
	defineF            = "define"
	debugF             = "debug"
	skipOptimizationF  = "skip-optimization"
	optimizationF      = "optimization"
	skipValidationF    = "skip-validation"
	rowMajorF          = "pack-row-major"
	columnMajorF       = "pack-column-major"
	warningsAsErrorsF  = "warnings-as-errors"
	strictnessF        = "strictness"
	backwardsCompatF   = "backwards-compat"
	childEffectF       = "child-effect"
	allowSlowOpsF      = "allow-slow-ops"
	standardIncludeF   = "standard-include"
	wgslF              = "wgsl"
	shaderModelF       = "shader-model"
	strictF            = "strict"
	verboseF           = "verbose"
	defaultEntry       = "main"
	defaultOptimize    = 1
	defaultShaderModel = "5_0"
)

// config mirrors the command line flags.
type config struct {
	Output           string   `mapstructure:"output"`
	Entry            string   `mapstructure:"entry"`
	Target           string   `mapstructure:"target"`
	Defines          []string `mapstructure:"define"`
	Debug            bool     `mapstructure:"debug"`
	SkipOptimization bool     `mapstructure:"skip-optimization"`
	Optimization     int      `mapstructure:"optimization"`
	SkipValidation   bool     `mapstructure:"skip-validation"`
	RowMajor         bool     `mapstructure:"pack-row-major"`
	ColumnMajor      bool     `mapstructure:"pack-column-major"`
	WarningsAsErrors bool     `mapstructure:"warnings-as-errors"`
	Strictness       bool     `mapstructure:"strictness"`
	BackwardsCompat  bool     `mapstructure:"backwards-compat"`
	ChildEffect      bool     `mapstructure:"child-effect"`
	AllowSlowOps     bool     `mapstructure:"allow-slow-ops"`
	StandardInclude  bool     `mapstructure:"standard-include"`
	WGSL             bool     `mapstructure:"wgsl"`
	ShaderModel      string   `mapstructure:"shader-model"`
	Strict           bool     `mapstructure:"strict"`
	Verbose          bool     `mapstructure:"verbose"`
}

func addFlags(fs *pflag.FlagSet, cfgFile *string) {
	fs.StringVar(cfgFile, configF, "", "YAML configuration file.")
	fs.StringP(outputF, "o", "", "Output file for the bytecode (default: stdout).")
	fs.StringP(entryF, "E", "", `Entry point name (default "main"; the first entry point with --wgsl).`)
	fs.StringP(targetF, "T", "", `Target profile, e.g. "ps_5_0". Derived from the entry point with --wgsl.`)
	fs.StringArrayP(defineF, "D", nil, "Macro definition NAME[=VALUE]; may be repeated. VALUE defaults to 1.")
	fs.Bool(debugF, false, "Emit debug information (/Zi).")
	fs.Bool(skipOptimizationF, false, "Disable optimizations (/Od).")
	fs.Int(optimizationF, defaultOptimize, "Optimization level 0-3 (/O0../O3).")
	fs.Bool(skipValidationF, false, "Skip validation of the generated code (/Vd).")
	fs.Bool(rowMajorF, false, "Pack matrices in row-major order (/Zpr).")
	fs.Bool(columnMajorF, false, "Pack matrices in column-major order (/Zpc).")
	fs.Bool(warningsAsErrorsF, false, "Treat warnings as errors (/WX).")
	fs.Bool(strictnessF, false, "Enable strict mode (/Ges).")
	fs.Bool(backwardsCompatF, false, "Enable backwards compatibility mode (/Gec).")
	fs.Bool(childEffectF, false, "Compile as a child effect (/Gch).")
	fs.Bool(allowSlowOpsF, false, "Allow slow effect operations (/Gdp).")
	fs.Bool(standardIncludeF, true, "Resolve #include relative to the including file.")
	fs.Bool(wgslF, false, "Treat the input as WGSL and translate it to HLSL first.")
	fs.String(shaderModelF, defaultShaderModel, "Shader model for --wgsl targets (5_0 or 5_1).")
	fs.Bool(strictF, false, "Fail if compilation succeeds with diagnostics.")
	fs.BoolP(verboseF, "v", false, "Log compiler calls to stderr.")
}

// NewCmd returns the fxc command compiling with compiler.
func NewCmd(compiler ShaderCompiler) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "fxc [flags] <input>",
		Short:         "Compile HLSL shaders to Direct3D bytecode.",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(cmd.Flags(), &cfgFile)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}
		v.SetEnvPrefix("FXC")
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(config)
		if err := v.Unmarshal(cfg); err != nil {
			return err
		}
		// viper splits array flags on commas; macro values may contain them.
		if cmd.Flags().Changed(defineF) {
			cfg.Defines, _ = cmd.Flags().GetStringArray(defineF)
		}

		return run(cmd, compiler, args[0], cfg)
	}

	return cmd
}

func run(cmd *cobra.Command, compiler ShaderCompiler, input string, cfg *config) error {
	if cfg.Verbose {
		d3dcompile.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer d3dcompile.SetLogger(nil)
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}

	var (
		code        []byte
		diagnostics *d3dcompile.Artifact
		written     bool
	)
	switch {
	case cfg.WGSL:
		code, diagnostics, err = compileWGSL(compiler, input, cfg, opts)
	case cfg.Output != "":
		diagnostics, err = compiler.CompileFromFileToFile(input, cfg.Output, opts)
		written = true
	default:
		code, diagnostics, err = compiler.CompileFromFile(input, opts)
	}

	printDiagnostics(cmd, diagnostics)
	if err != nil {
		return err
	}
	if cfg.Strict && diagnostics != nil {
		return errors.New("compilation succeeded with diagnostics (--strict)")
	}

	switch {
	case written:
		fmt.Fprintf(cmd.ErrOrStderr(), "Compiled %s to %s\n", input, cfg.Output)
	case cfg.Output != "":
		if err := os.WriteFile(cfg.Output, code, 0o644); err != nil {
			return &d3dcompile.WriteError{Path: cfg.Output, Err: err}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Compiled %s to %s (%d bytes)\n", input, cfg.Output, len(code))
	default:
		if _, err := cmd.OutOrStdout().Write(code); err != nil {
			return err
		}
	}
	return nil
}

func compileWGSL(compiler ShaderCompiler, input string, cfg *config, opts *d3dcompile.Options) ([]byte, *d3dcompile.Artifact, error) {
	sm, err := d3dcompile.ParseShaderModel(cfg.ShaderModel)
	if err != nil {
		return nil, nil, err
	}
	source, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, err
	}

	// An empty entry lets the translator pick the first one.
	shader, err := translate.WGSL(string(source), cfg.Entry, &translate.Options{ShaderModel: sm, Validate: true})
	if err != nil {
		return nil, nil, err
	}

	opts.EntryPoint = shader.EntryPoint
	if cfg.Target == "" {
		opts.Target = shader.Target
	}
	return compiler.Compile([]byte(shader.Source), filepath.Base(input), opts)
}

// options converts the configuration into compile options.
func (cfg *config) options() (*d3dcompile.Options, error) {
	macros, err := parseDefines(cfg.Defines)
	if err != nil {
		return nil, err
	}
	if !cfg.WGSL && cfg.Target == "" {
		return nil, errors.New("no target profile specified (use -T, e.g. -T ps_5_0)")
	}
	if cfg.Optimization < 0 || cfg.Optimization > 3 {
		return nil, fmt.Errorf("optimization level %d out of range 0-3", cfg.Optimization)
	}

	var flags d3dcompile.CompileFlags
	set := func(on bool, f d3dcompile.CompileFlags) {
		if on {
			flags |= f
		}
	}
	set(cfg.Debug, d3dcompile.Debug)
	set(cfg.SkipOptimization, d3dcompile.SkipOptimization)
	set(cfg.SkipValidation, d3dcompile.SkipValidation)
	set(cfg.RowMajor, d3dcompile.PackMatrixRowMajor)
	set(cfg.ColumnMajor, d3dcompile.PackMatrixColumnMajor)
	set(cfg.WarningsAsErrors, d3dcompile.WarningsAreErrors)
	set(cfg.Strictness, d3dcompile.EnableStrictness)
	set(cfg.BackwardsCompat, d3dcompile.EnableBackwardsCompatibility)
	flags = flags.WithOptimizationLevel(cfg.Optimization)

	var effectFlags d3dcompile.EffectFlags
	if cfg.ChildEffect {
		effectFlags |= d3dcompile.ChildEffect
	}
	if cfg.AllowSlowOps {
		effectFlags |= d3dcompile.AllowSlowOps
	}

	entry := cfg.Entry
	if entry == "" && !cfg.WGSL {
		entry = defaultEntry
	}

	include := d3dcompile.NoInclude
	if cfg.StandardInclude {
		include = d3dcompile.StandardFileInclude
	}

	return &d3dcompile.Options{
		Macros:      macros,
		Include:     include,
		EntryPoint:  entry,
		Target:      cfg.Target,
		Flags:       flags,
		EffectFlags: effectFlags,
	}, nil
}

// parseDefines parses NAME[=VALUE] macro definitions.
func parseDefines(defines []string) ([]d3dcompile.ShaderMacro, error) {
	macros := make([]d3dcompile.ShaderMacro, 0, len(defines))
	for _, d := range defines {
		name, value, ok := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid macro definition %q", d)
		}
		if !ok {
			value = "1"
		}
		macros = append(macros, d3dcompile.ShaderMacro{Name: name, Definition: value})
	}
	return macros, nil
}

func printDiagnostics(cmd *cobra.Command, diagnostics *d3dcompile.Artifact) {
	for _, line := range diagnostics.Lines() {
		fmt.Fprintln(cmd.ErrOrStderr(), line)
	}
}
