package main

import (
	"fmt"
	"os"

	"github.com/rigelrozanski/nibsheet/view"
	"github.com/rigelrozanski/thranch/quac"
	"github.com/spf13/cobra"
)

// sheetOptions are the flags every sheet producing command understands.
type sheetOptions struct {
	config      string
	quID        uint32
	paper       string
	orientation string
	layout      string
	columns     int
	interColumn float64
	nibWidth    float64
	noSlant     bool
	noNibAngle  bool
}

var sheetOpts sheetOptions

func addSheetFlags(cmd *cobra.Command, o *sheetOptions) {
	fl := cmd.Flags()
	fl.StringVar(&o.config, "config", "", "YAML file describing the sheet")
	fl.Uint32Var(&o.quID, "qu-id", 0, "read the sheet description from the quac store")
	fl.StringVar(&o.paper, "paper", "", "paper size (see 'papers')")
	fl.StringVar(&o.orientation, "orientation", "", "P for portrait, L for landscape")
	fl.StringVar(&o.layout, "layout", "", "margin preset (see 'papers')")
	fl.IntVar(&o.columns, "columns", 1, "number of columns")
	fl.Float64Var(&o.interColumn, "inter-column", 0, "gap between columns in mm")
	fl.Float64Var(&o.nibWidth, "nib-width", 1.1, "nib width in mm")
	fl.BoolVar(&o.noSlant, "no-slant", false, "leave out the slant lines")
	fl.BoolVar(&o.noNibAngle, "no-nib-angle", false, "leave out the nib-angle lines")
}

// view assembles the sheet description: defaults, then the config file or
// quac entry, then whatever flags were given explicitly.
func (o *sheetOptions) view(cmd *cobra.Command) (view.View, error) {
	v := view.Default()
	var err error
	switch {
	case o.config != "" && o.quID != 0:
		return v, fmt.Errorf("use either --config or --qu-id, not both")
	case o.config != "":
		if v, err = view.Load(o.config); err != nil {
			return v, err
		}
	case o.quID != 0:
		quac.Initialize(os.ExpandEnv("$HOME/.thranch_config"))
		content, found := quac.GetContentByID(o.quID)
		if !found {
			return v, fmt.Errorf("could not find anything under id: %v", o.quID)
		}
		if v, err = view.Parse([]byte(content)); err != nil {
			return v, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("paper") {
		v.PaperSize.Name = o.paper
	}
	if fl.Changed("orientation") {
		v.Orientation = o.orientation
	}
	if fl.Changed("nib-width") {
		v.NibWidth = o.nibWidth
	}
	// a layout preset is computed for the final paper and orientation and
	// may itself be refined by explicit column flags
	if o.layout != "" {
		if err := view.ApplyLayout(&v, o.layout); err != nil {
			return v, err
		}
	}
	if fl.Changed("columns") {
		v.Page.Columns = o.columns
	}
	if fl.Changed("inter-column") {
		v.Page.InterColumn = o.interColumn
	}
	if o.noSlant {
		v.Slant.Enabled = false
	}
	if o.noNibAngle {
		v.NibAngle.Enabled = false
	}
	tracer().Debugf("sheet view: %+v", v)
	return v, nil
}
