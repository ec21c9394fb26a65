package main

import (
	"github.com/pterm/pterm"
	"github.com/rigelrozanski/nibsheet/view"
	"github.com/spf13/cobra"
)

var (
	PreviewCmd = &cobra.Command{
		Use:   "preview [output.png]",
		Short: "rasterise a practice sheet into a png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewCmd,
	}

	previewOpts sheetOptions
	dpmmFlag    float64
)

func init() {
	addSheetFlags(PreviewCmd, &previewOpts)
	PreviewCmd.Flags().Float64Var(&dpmmFlag, "dpmm", 4, "pixels per millimeter")
	RootCmd.AddCommand(PreviewCmd)
}

func previewCmd(cmd *cobra.Command, args []string) error {
	v, err := previewOpts.view(cmd)
	if err != nil {
		return err
	}
	m, err := view.ToModel(v)
	if err != nil {
		return err
	}
	img, n, err := renderPreview(m, dpmmFlag)
	if err != nil {
		return err
	}
	filename := outputName(args, m, "png")
	if err := writePNG(img, filename); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s (%dx%d px, %d lines)",
		filename, img.Bounds().Dx(), img.Bounds().Dy(), n)
	return nil
}
