package cli

import (
	"context"
	"log/slog"

	"github.com/phpshell/protoreg/infrastructure/source"
	"github.com/phpshell/protoreg/log"
	"github.com/phpshell/protoreg/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config
	logger  *slog.Logger
	version string
}

// NewRootCommand builds the protohelp command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: newViper(), version: version}

	root := &cobra.Command{
		Use:   "protohelp",
		Short: "Query the built-in prototype registry",
		Long: `protohelp answers the same questions the interactive shell asks the
prototype registry: the signature and description of a built-in function
or method, and the keys that complete a prefix such as "PDO::".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log.New(
				log.WithWriter(cmd.ErrOrStderr()),
				log.WithLevel(cfg.LogLevel),
				log.WithFormat(cfg.LogFormat),
			)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.StringSlice("overlay", nil, "extra prototype table layered over the embedded one (repeatable)")
	flags.String("policy", "", "duplicate key policy: reject or last-wins")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	_ = a.v.BindPFlag("overlays", flags.Lookup("overlay"))
	_ = a.v.BindPFlag("policy", flags.Lookup("policy"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		a.newLookupCommand(),
		a.newCompleteCommand(),
		a.newListCommand(),
		a.newValidateCommand(),
		a.newSchemaCommand(),
		a.newVersionCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// loadRegistry returns the shared registry, or a private one when overlays or a
// non-default policy are configured.
func (a *app) loadRegistry(ctx context.Context) (*registry.Registry, error) {
	if len(a.cfg.Overlays) == 0 && a.cfg.Policy == registry.Reject {
		if err := registry.Init(); err != nil {
			return nil, err
		}
		return registry.Instance(), nil
	}

	opts := []registry.Option{
		registry.WithSource(source.Embedded()),
		registry.WithDuplicatePolicy(a.cfg.Policy),
		registry.WithLogger(a.logger),
	}
	for _, path := range a.cfg.Overlays {
		opts = append(opts, registry.WithSource(source.NewFileSource(path)))
	}
	return registry.New(ctx, opts...)
}
