// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"github.com/Ejyke90/iso20022-migration-service/internal/config"
	"github.com/Ejyke90/iso20022-migration-service/internal/convlog"
	"github.com/Ejyke90/iso20022-migration-service/internal/factory"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the effective application configuration, resolved before any
	// subcommand runs
	Cfg *config.Config

	// Recorder receives one anonymized entry per conversion attempt
	Recorder convlog.Sink = convlog.NopSink{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mt-iso20022",
		Short: "A CLI tool to convert SWIFT MT messages to ISO 20022 XML.",
		Long: `mt-iso20022 converts SWIFT MT payment messages to ISO 20022 XML:
MT103 and MT102 to pacs.008, MT101 to pain.001 and MT202 to pacs.009.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to mt-iso20022!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if cfg.Record.Enabled {
				Recorder = convlog.NewFileSink(cfg.Record.Path)
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// ConverterOptions derives the factory options from the loaded configuration.
func ConverterOptions() factory.Options {
	if Cfg == nil {
		return factory.Options{}
	}
	return factory.Options{StrictChargeCodes: Cfg.Converters.StrictChargeCodes}
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input MT message file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output XML file (stdout when omitted)")
}
