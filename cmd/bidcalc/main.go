package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/internal/buildinfo"
	"github.com/gbistila/bidupgradestest/internal/config"
	"github.com/gbistila/bidupgradestest/internal/logger"
	"github.com/gbistila/bidupgradestest/internal/server"
	"github.com/gbistila/bidupgradestest/internal/tui"
	"github.com/gbistila/bidupgradestest/pkg/present"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries settings resolved in PersistentPreRunE to the subcommands.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:          "bidcalc",
		Short:        "Flatwork concrete bid calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.cleanup != nil {
				_ = a.cleanup()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(config.KeyLocale, "en-US", "locale for currency formatting")
	_ = a.v.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup(config.KeyDebug))
	_ = a.v.BindPFlag(config.KeyLocale, rootCmd.PersistentFlags().Lookup(config.KeyLocale))

	rootCmd.AddCommand(quoteCmd(a))
	rootCmd.AddCommand(jobCmd(a))
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(tuiCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.From(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{Debug: cfg.Debug})
	if err != nil {
		return err
	}
	a.cleanup = cleanup
	logger.L().Debug("command.start", zap.String("command", cmd.Name()))
	return nil
}

func (a *app) presenter() (*present.Presenter, error) {
	return present.NewForLocale(a.cfg.Locale)
}

func quoteCmd(a *app) *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a slab from its area and thickness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.presenter()
			if err != nil {
				return err
			}
			return runQuote(cmd.OutOrStdout(), p, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.area, "area", "a", "", "slab area in square feet")
	cmd.Flags().StringVarP(&opts.thickness, "thickness", "t", "", "slab thickness in inches")
	cmd.Flags().BoolVar(&opts.handoff, "handoff", false, "include the operational handoff")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full breakdown as JSON")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the handoff to the clipboard")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("thickness")
	return cmd
}

func jobCmd(a *app) *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "job [project-path]",
		Short: "Price the job described by job.yaml in a project directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.presenter()
			if err != nil {
				return err
			}
			return runJob(cmd.OutOrStdout(), p, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full breakdown as JSON")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the handoff to the clipboard")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a job file without pricing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local web calculator",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv, err := server.New(a.cfg, logger.L())
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntP(config.KeyPort, "p", 3000, "HTTP server port")
	cmd.Flags().String(config.KeyHost, "127.0.0.1", "HTTP listen address")
	_ = a.v.BindPFlag(config.KeyPort, cmd.Flags().Lookup(config.KeyPort))
	_ = a.v.BindPFlag(config.KeyHost, cmd.Flags().Lookup(config.KeyHost))
	return cmd
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.presenter()
			if err != nil {
				return err
			}
			return tui.Run(tui.Deps{
				Presenter: p,
				Clipboard: present.SystemClipboard{},
				Logger:    logger.L(),
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(buildinfo.String() + "\n"))
			return err
		},
	}
}
