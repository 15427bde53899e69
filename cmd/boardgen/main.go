// Command boardgen generates the host API, the server firmware sources and
// the hardware project of a board description.
//
//	boardgen generate board.toml -o out
//	boardgen generate board.toml --backend sdk --dry-run
//	boardgen inspect board.toml
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/config"
	"github.com/wippyai/boardgen/generator"
	"github.com/wippyai/boardgen/scheduler"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		printDiagnostics(err)
		os.Exit(1)
	}
}

// app carries the state shared by all commands.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	log        *zap.Logger
	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "boardgen",
		Short:         "Generate host, firmware and hardware sources for a board",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "configuration file (default: ./boardgen.toml, /etc/boardgen/boardgen.toml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("dev", false, "human readable development logging")
	flags.StringSliceP("backend", "b", config.Known, "backends to run")
	flags.String("templates", "templates", "template root holding server/ and project/")
	a.bind(config.KeyLogLevel, flags.Lookup("log-level"))
	a.bind(config.KeyLogDevelopment, flags.Lookup("dev"))
	a.bind(config.KeyBackends, flags.Lookup("backend"))
	a.bind(config.KeyTemplates, flags.Lookup("templates"))

	root.AddCommand(
		newGenerateCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// setup loads the configuration and installs the logger in every package
// that logs.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	backend.SetLogger(log.Named("backend"))
	scheduler.SetLogger(log.Named("scheduler"))
	generator.SetLogger(log.Named("generator"))
	config.SetLogger(log.Named("config"))
	return nil
}
