package main

import (
	"github.com/spf13/cobra"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	// FormatText is the classic two-line result format
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose      bool
	OutputFormat string
	LogFormat    string
	ConfigFile   string
}

// RegisterGlobalFlags registers persistent flags on the root command
func RegisterGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&f.OutputFormat, "output", "o", "text", "Output format (text|json)")
	cmd.PersistentFlags().StringVar(&f.LogFormat, "log-format", "", "Log format (text|json, default from config)")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Path to a YAML config file")
}

// Validate checks the global flag values.
func (f *GlobalFlags) Validate() error {
	switch OutputFormat(f.OutputFormat) {
	case FormatText, FormatJSON:
	default:
		return usageErrorf("--output must be text or json, got %q", f.OutputFormat)
	}
	switch f.LogFormat {
	case "", "text", "json":
	default:
		return usageErrorf("--log-format must be text or json, got %q", f.LogFormat)
	}

	return nil
}

// GetOutputFormat returns the parsed OutputFormat enum
func (f *GlobalFlags) GetOutputFormat() OutputFormat {
	if f.OutputFormat == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}
