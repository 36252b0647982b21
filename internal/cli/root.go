package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lumen/internal/infra/logger"
	"github.com/aalvaropc/lumen/internal/ui/tui"
)

// rootOptions carries the persistent flags down to subcommands.
type rootOptions struct {
	debug     bool
	workspace string

	cleanup func() error
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lumen",
		Short:        "lumen - a terminal wallet for the Stellar network",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			root, _ := resolveWorkspaceRoot(opts.workspace)
			cleanup, err := logger.Setup(logger.Config{Root: root, Debug: opts.debug})
			opts.cleanup = cleanup
			if opts.debug {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log disabled: %v\n", err)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
				}
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.cleanup != nil {
				_ = opts.cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Classifier:    app.classifier,
				Validator:     app.validator,
				CreateWallet:  app.createWallet,
				CheckBalance:  app.checkBalance,
				Submit:        app.submit,
				Logger:        logger.L(),
				RevealSecrets: app.cfg.Display.RevealSecrets,
				Network:       app.cfg.Network.Name,
				Debug:         opts.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .lumen/logs/lumen.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		initCmd(opts),
		walletCmd(opts),
		keyCmd(opts),
		balanceCmd(opts),
		sendCmd(opts),
		receiptsCmd(opts),
		versionCmd(),
	)
	return cmd
}
