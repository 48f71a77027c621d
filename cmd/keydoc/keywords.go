package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/keydoc"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the known documentation keywords",
	Args:  cobra.NoArgs,
	RunE:  runKeywords,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the keydoc version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), keydoc.VersionTag())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range table.Names() {
		desc, _ := table.Describe(name)
		fmt.Fprintf(w, "%s\t%s\n", name, desc)
	}
	return w.Flush()
}
