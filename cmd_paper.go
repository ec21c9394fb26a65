package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rigelrozanski/nibsheet/view"
	"github.com/spf13/cobra"
)

var (
	PaperCmd = &cobra.Command{
		Use:   "papers",
		Short: "list the paper sizes and margin layouts",
		Long: `paper sizes are given in portrait millimeters; use --orientation L
to print them in landscape. A paper called "other" takes its size from
the width and height given in the config file.

margin layouts:
	practice:             12.7mm all around, one column
	two-columns-ninths:   book proportions, two columns
	single:               book proportions, wide side margins
	verso:                book proportions, left hand page
	recto:                book proportions, right hand page`,
		Args: cobra.NoArgs,
		RunE: paperCmd,
	}
)

func init() {
	RootCmd.AddCommand(PaperCmd)
}

func paperCmd(cmd *cobra.Command, args []string) error {
	data := pterm.TableData{{"name", "label", "width", "height"}}
	for _, p := range view.Papers() {
		data = append(data, []string{
			p.Name, p.Label, fmt.Sprintf("%.1f", p.Width), fmt.Sprintf("%.1f", p.Height),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("layouts: %v", view.Layouts())
	return nil
}
