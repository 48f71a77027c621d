package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/keydoc/checkdoc"
	"github.com/iw2rmb/keydoc/document"
	"github.com/iw2rmb/keydoc/helpdesc"
	"github.com/iw2rmb/keydoc/tui"
)

var (
	flagCheckBatch  bool
	flagCheckLegacy bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check Keywords headers, offering to insert a missing keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckBatch, "batch", false, "Never prompt; report every miss as a finding")
	checkCmd.Flags().BoolVar(&flagCheckLegacy, "legacy", false, "Use the compatibility shim for older hosts")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	// The completion-help integration is torn down with the command so the
	// describer list ends up exactly as it started.
	descriptions := helpdesc.NewRegistry()
	installation := helpdesc.Install(descriptions, table)
	defer installation.Uninstall()

	opts := []checkdoc.KeywordsOption{}
	if !flagCheckBatch {
		opts = append(opts, checkdoc.WithPrompter(tui.NewPrompter(tui.WithDescriptions(descriptions))))
	}
	if flagCheckLegacy {
		opts = append(opts, checkdoc.WithLegacyHost())
	}

	registry := checkdoc.NewRegistry()
	if err := registry.Register(checkdoc.NewKeywordsChecker(table, opts...)); err != nil {
		return err
	}

	total := 0
	for _, path := range args {
		findings, err := checkFile(cmd, registry, path)
		if err != nil {
			return err
		}
		total += findings
	}
	if total > 0 {
		return fmt.Errorf("%d finding(s)", total)
	}
	return nil
}

func checkFile(cmd *cobra.Command, registry *checkdoc.Registry, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	doc := document.New(string(raw))
	logger.Debug("checking", zap.String("path", path), zap.Int("lines", doc.LineCount()))

	findings, err := registry.Run(cmd.Context(), doc, path)
	if err != nil {
		return 0, err
	}

	if doc.Version() > 0 {
		logger.Debug("writing back", zap.String("path", path), zap.Uint64("version", doc.Version()))
		if err := os.WriteFile(path, []byte(doc.Text()), info.Mode().Perm()); err != nil {
			return 0, fmt.Errorf("write %s: %w", path, err)
		}
	}

	for _, f := range findings {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return len(findings), nil
}
