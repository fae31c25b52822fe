// Package cli wires the pureext helpers to a cobra command tree.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pure-Company/pureext/arrayext"
	"github.com/Pure-Company/pureext/internal/config"
	"github.com/Pure-Company/pureext/internal/logger"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logger.Logger
}

// Execute runs the pureext command line.
func Execute() error {
	return executeRoot(NewRootCommand())
}

// executeRoot runs rootCmd and reports a failure once on its stderr.
func executeRoot(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logger.Nop()}

	rootCmd := &cobra.Command{
		Use:   "pureext",
		Short: "Slice, string and HTML helpers from the command line",
		Long: `pureext runs one helper per invocation and prints its result.

COMMANDS:
  Arrays:
    pureext smallest --count 2 5 4 10 2 26     - smallest values, ascending
    pureext distinct a b a c                   - unique values, first seen order
    pureext index --key name records.json      - object keyed by a record field
    pureext shuffle --seed 7 a b c d           - values in random order
    pureext partition --pattern '^a' ab ba ac  - split by a regular expression

  Strings:
    pureext decapitalize "Hello world"         - lower-case the first character

  HTML:
    pureext element div "<p>text</p>"          - build an element
    pureext visibility --selector main page.html - toggle the hidden attribute`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(noSubcommandArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := a.log.Sync(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to sync logger: %v\n", err)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "error", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (json, console)")
	flags.StringP("output", "o", config.FormatText, "output format (text, json, yaml)")
	flags.Bool("color", false, "colorize text output")

	a.v.BindPFlag("config", flags.Lookup("config"))
	a.v.BindPFlag("logger.level", flags.Lookup("log-level"))
	a.v.BindPFlag("logger.format", flags.Lookup("log-format"))
	a.v.BindPFlag("output.format", flags.Lookup("output"))
	a.v.BindPFlag("output.color", flags.Lookup("color"))

	a.v.SetDefault("defaults.count", arrayext.DefaultCount)
	a.v.SetDefault("defaults.key", arrayext.DefaultKey)

	a.v.SetEnvPrefix("PUREEXT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{err: err, code: exitUsage}
	})

	rootCmd.AddCommand(
		newSmallestCommand(a),
		newDistinctCommand(a),
		newIndexCommand(a),
		newShuffleCommand(a),
		newPartitionCommand(a),
		newDecapitalizeCommand(a),
		newElementCommand(a),
		newVisibilityCommand(a),
	)
	return rootCmd
}

func (a *app) init() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return usageError("failed to read config %s: %w", path, err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return usageError("failed to initialize config: %w", err)
	}
	a.cfg = cfg

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return usageError("failed to initialize logger: %w", err)
	}
	a.log = log.WithComponent("cli")
	return nil
}

// run wraps a command body with logging.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := a.log.WithCommand(cmd.Name())
		start := time.Now()
		log.Debugw("Running command", "args", len(args))

		if err := fn(cmd, args); err != nil {
			log.Debugw("Command failed", "error", err)
			return err
		}
		log.LogDuration(cmd.Name(), start)
		return nil
	}
}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{
		w:      cmd.OutOrStdout(),
		format: a.cfg.Output.Format,
		color:  a.cfg.Output.Color,
	}
}
