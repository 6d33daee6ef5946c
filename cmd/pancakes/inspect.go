package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/viewstack/internal/pancakes"
)

var flagFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the saved stack",
	Long:  `Print the stack saved in the configured store, bottom screen first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := pancakes.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := pancakes.Inspect(st, cfg.Store.Key)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), flagFormat)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := pancakes.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Delete(cfg.Store.Key); err != nil {
			return fmt.Errorf("delete %q: %w", cfg.Store.Key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot stack %q\n", cfg.Store.Key)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&flagFormat, "format", "f", pancakes.FormatJSON, "output format: json or yaml")
}
