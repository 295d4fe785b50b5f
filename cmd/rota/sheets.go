package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rota-go/pkg/rota/parser"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Long:  "List sheet names, visibility and row counts to help choose rota.sheet_name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("file not found: %s", args[0])
			}
			defer f.Close()

			sheets, err := parser.ListSheets(f)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVISIBLE\tROWS")
			for _, s := range sheets {
				fmt.Fprintf(w, "%s\t%t\t%d\n", s.Name, s.Visible, s.Rows)
			}
			return w.Flush()
		},
	}
}
