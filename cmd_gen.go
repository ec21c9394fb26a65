package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rigelrozanski/nibsheet/guide"
	"github.com/rigelrozanski/nibsheet/view"
	"github.com/spf13/cobra"
)

var (
	GenerateCmd = &cobra.Command{
		Use:   "gen [output.pdf]",
		Short: "generate a practice sheet as pdf",
		Long: `generate a practice sheet as pdf

the sheet is described by the built in defaults, optionally replaced by a
YAML file (--config) or a quac entry (--qu-id), and finally adjusted by
the remaining flags. Without an output name the file is called
practice_<paper>.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: genCmd,
	}
	noCaption bool
)

func init() {
	addSheetFlags(GenerateCmd, &sheetOpts)
	GenerateCmd.Flags().BoolVar(&noCaption, "no-caption", false,
		"do not print the nib and angle settings in the top margin")
	RootCmd.AddCommand(GenerateCmd)
}

func genCmd(cmd *cobra.Command, args []string) error {
	v, err := sheetOpts.view(cmd)
	if err != nil {
		return err
	}
	m, err := view.ToModel(v)
	if err != nil {
		return err
	}
	filename := outputName(args, m, "pdf")
	caption := ""
	if !noCaption {
		caption = sheetCaption(v)
	}
	n, err := writeSheetPDF(m, caption, filename)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s (%d lines)", filename, n)
	return nil
}

// writeSheetPDF renders the model into a pdf file and reports the number
// of lines drawn. An empty caption leaves the top margin blank.
func writeSheetPDF(m *guide.PageModel, caption, filename string) (int, error) {
	pdf := newPdf(m)
	strokes, err := drawSheet(pdf, m)
	if err != nil {
		pdf.Close()
		return 0, err
	}
	printCaption(pdf, m, caption)
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return len(strokes), nil
}

func outputName(args []string, m *guide.PageModel, ext string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fmt.Sprintf("practice_%v.%v", m.Page.Name, ext)
}
