package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/keydoc/keyword"
)

var (
	logger = zap.NewNop()

	flagDebug        bool
	flagKeywordsFile string
)

var rootCmd = &cobra.Command{
	Use:          "keydoc",
	Short:        "Documentation keyword checks for Lisp source headers",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `keydoc verifies that a Lisp source file's "Keywords:" header line names at
least one keyword recognized by the documentation index, and offers to insert
one when it does not.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagKeywordsFile, "keywords-file", "", "YAML file of extra keyword: description pairs")
	cobra.CheckErr(viper.BindPFlag("keywords-file", rootCmd.PersistentFlags().Lookup("keywords-file")))
}

func setup() error {
	cfg := zap.NewProductionConfig()
	if flagDebug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	viper.SetConfigName("keydoc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("KEYDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// loadTable layers the configured keyword file, if any, over the builtin
// finder table.
func loadTable() (*keyword.Table, error) {
	table := keyword.Builtin()

	path := viper.GetString("keywords-file")
	if path == "" {
		return table, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyword table: %w", err)
	}
	defer f.Close()

	extra, err := keyword.LoadYAML(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded extra keywords", zap.String("path", path), zap.Int("count", extra.Len()))
	return table.Merge(extra), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
