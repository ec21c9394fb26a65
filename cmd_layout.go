package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rigelrozanski/nibsheet/guide"
	"github.com/rigelrozanski/nibsheet/view"
	"github.com/spf13/cobra"
)

var (
	LayoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "show how the guide lines fit the columns without writing a file",
		Args:  cobra.NoArgs,
		RunE:  layoutCmd,
	}

	layoutOpts sheetOptions
	dumpView   bool
)

func init() {
	addSheetFlags(LayoutCmd, &layoutOpts)
	LayoutCmd.Flags().BoolVar(&dumpView, "dump", false,
		"print the resolved sheet description as YAML, usable with --config")
	RootCmd.AddCommand(LayoutCmd)
}

// columnReport is what the layout of a single column comes down to.
type columnReport struct {
	column guide.Column
	rep    guide.Repetition
	counts map[guide.LineKind]int
}

func layoutReport(m *guide.PageModel) ([]columnReport, *countingPdf, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	ext := guide.LineSetExtent(m.Lines)
	reports := make([]columnReport, 0, len(m.Columns))
	var all []guide.Stroke
	for _, col := range m.Columns {
		strokes := guide.LayoutColumn(col, m, ext)
		cr := columnReport{
			column: col,
			rep:    guide.SolveColumn(col, m.Lines, ext),
			counts: map[guide.LineKind]int{},
		}
		for _, s := range strokes {
			cr.counts[s.Kind]++
		}
		reports = append(reports, cr)
		all = append(all, strokes...)
	}
	dummy := &countingPdf{}
	guide.Draw(dummy, all)
	return reports, dummy, nil
}

// printView writes v in the format --config reads.
func printView(w io.Writer, v view.View) error {
	out, err := view.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func layoutCmd(cmd *cobra.Command, args []string) error {
	v, err := layoutOpts.view(cmd)
	if err != nil {
		return err
	}
	if dumpView {
		if err := printView(os.Stdout, v); err != nil {
			return err
		}
	}
	m, err := view.ToModel(v)
	if err != nil {
		return err
	}
	reports, dummy, err := layoutReport(m)
	if err != nil {
		return err
	}
	w, h := m.Page.Size()
	pterm.Info.Printfln("%s %s, %.1f x %.1f mm", m.Page.Name, m.Page.Orientation, w, h)
	data := pterm.TableData{{"column", "left", "width", "height", "rows", "gap", "skip first",
		"guide", "slant", "nib angle"}}
	for i, r := range reports {
		data = append(data, []string{
			fmt.Sprint(i + 1),
			fmt.Sprintf("%.1f", r.column.Left),
			fmt.Sprintf("%.1f", r.column.Width()),
			fmt.Sprintf("%.1f", r.column.Height()),
			fmt.Sprint(r.rep.Count),
			fmt.Sprintf("%.2f", r.rep.Gap),
			fmt.Sprint(r.rep.SkipFirst),
			fmt.Sprint(r.counts[guide.GuideKind]),
			fmt.Sprint(r.counts[guide.SlantKind]),
			fmt.Sprint(r.counts[guide.NibAngleKind]),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d lines, %d color and %d width changes",
		dummy.lines, dummy.colorChanges, dummy.widthChanges)
	return nil
}
