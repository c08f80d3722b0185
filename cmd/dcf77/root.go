package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/complex-gh/dcf77_go/internal/config"
	"github.com/complex-gh/dcf77_go/internal/observability"
	"github.com/complex-gh/dcf77_go/lang"
)

// options carries flags and the state derived from them before a
// subcommand runs
type options struct {
	configPath string
	verbose    bool
	language   string
	format     string

	cfg  config.Config
	lang *lang.Language
	log  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "dcf77",
		Short: "Encode and decode DCF77 minute frames",
		Long: `dcf77 converts between civil time and the 59-second DCF77 minute frame.

Carriers are given as a hexadecimal word (0x...) or as a receiver bit
string of 59 characters, second 0 first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default: ./"+config.DefaultPath+" if present)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&o.language, "lang", "", "language for names, e.g. en or de")
	flags.StringVar(&o.format, "format", "", "output format: text, yaml or json")

	root.AddCommand(newEncodeCmd(o), newDecodeCmd(o), newStreamCmd(o))
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.language != "" {
		cfg.Language = o.language
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	config.Normalize(&cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	l, err := lang.Parse(cfg.Language)
	if err != nil {
		return fmt.Errorf("language %q: %w", cfg.Language, err)
	}

	o.cfg = cfg
	o.lang = l
	o.log = observability.InitLogger("dcf77", cfg.LogLevel, cmd.ErrOrStderr())
	o.log.Debug().
		Str("language", l.GetLangNameEn()).
		Int("pivot", cfg.Pivot).
		Str("format", cfg.Format).
		Msg("configured")
	return nil
}
