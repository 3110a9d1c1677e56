// Package cmd implements the numwords command line.
package cmd

import (
	"io"
	"log/slog"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/az-ai-labs/numwords/internal/locale"
	"github.com/az-ai-labs/numwords/numwords"
)

const (
	envPrefix   = "NUMWORDS"
	defaultLang = "hu"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	logger  *slog.Logger
	cfgFile string
	verbose bool
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Settings resolve from flags, then
// NUMWORDS_* environment variables, then the --config file.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "numwords",
		Short: "Spell numbers and currency amounts as words",
		Long: `numwords spells integers of any size and currency amounts as words.

Languages:
  hu  - Hungarian
  de  - German`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.StringP("lang", "l", defaultLang, "language tag or name")
	_ = a.v.BindPFlag("lang", flags.Lookup("lang"))

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetDefault("lang", defaultLang)

	root.AddCommand(
		newWordsCmd(a),
		newCurrencyCmd(a),
		newLanguagesCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if a.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfgFile)
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", a.cfgFile)
	}
	a.logger.Debug("config loaded", slog.String("file", a.v.ConfigFileUsed()))
	return nil
}

// language resolves the configured language.
func (a *app) language() (numwords.Language, error) {
	tag := a.v.GetString("lang")
	lang, err := locale.Lookup(tag)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("language selected", slog.String("lang", tag), slog.String("name", lang.Name()))
	return lang, nil
}
