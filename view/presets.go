package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/cases"
)

// OtherPaper is the paper name for explicit dimensions.
const OtherPaper = "other"

// Paper is a named paper size in portrait millimeters.
type Paper struct {
	Name   string
	Label  string
	Width  float64
	Height float64
}

var papers = func() *treemap.Map {
	m := treemap.NewWithStringComparator()
	for _, p := range []Paper{
		{"a4", "A4", 210, 297},
		{"a3", "A3", 297, 420},
		{"letter", "Letter", 215.9, 279.4},
		{"legal", "Legal", 215.9, 355.6},
	} {
		m.Put(p.Name, p)
	}
	return m
}()

var fold = cases.Fold()

func presetKey(name string) string {
	return fold.String(strings.TrimSpace(name))
}

// LookupPaper finds a paper preset by name, ignoring case.
func LookupPaper(name string) (Paper, bool) {
	p, found := papers.Get(presetKey(name))
	if !found {
		return Paper{}, false
	}
	return p.(Paper), true
}

// Papers lists all paper presets ordered by name.
func Papers() []Paper {
	list := make([]Paper, 0, papers.Size())
	for _, p := range papers.Values() {
		list = append(list, p.(Paper))
	}
	return list
}

// paperSize resolves the portrait dimensions of the view's paper.
func (v View) paperSize() (name string, width, height float64, err error) {
	if presetKey(v.PaperSize.Name) == OtherPaper {
		return OtherPaper, v.PaperSize.Width, v.PaperSize.Height, nil
	}
	p, ok := LookupPaper(v.PaperSize.Name)
	if !ok {
		return "", 0, 0, fmt.Errorf("unknown paper size %q", v.PaperSize.Name)
	}
	return p.Name, p.Width, p.Height, nil
}

// orientedSize returns the dimensions of the sheet as printed.
func (v View) orientedSize() (width, height float64, err error) {
	_, w, h, err := v.paperSize()
	if err != nil {
		return 0, 0, err
	}
	if isLandscape(v.Orientation) {
		return h, w, nil
	}
	return w, h, nil
}

func isLandscape(orientation string) bool {
	return strings.EqualFold(strings.TrimSpace(orientation), "L")
}

// ---------------------------------------------------------------------------

// layoutFn derives page margins from the printed page size.
type layoutFn func(page *PageView, width, height float64)

var layouts = map[string]layoutFn{
	"practice": func(page *PageView, width, height float64) {
		page.TopMargin = defaultMargin
		page.BottomMargin = defaultMargin
		page.LeftMargin = defaultMargin
		page.RightMargin = defaultMargin
		page.Columns = 1
		page.InterColumn = 0
	},
	"two-columns-ninths": func(page *PageView, width, height float64) {
		ninths(page, width, height, width/9, width/9)
		page.Columns = 2
	},
	"single": func(page *PageView, width, height float64) {
		ninths(page, width, height, width/6, width/6)
	},
	"verso": func(page *PageView, width, height float64) {
		ninths(page, width, height, width/4.5, width/9)
	},
	"recto": func(page *PageView, width, height float64) {
		ninths(page, width, height, width/9, width/4.5)
	},
}

// ninths sets the classic book page proportions: a ninth of the height on
// top, two ninths below.
func ninths(page *PageView, width, height, left, right float64) {
	page.TopMargin = tenth(height / 9)
	page.BottomMargin = tenth(height / 4.5)
	page.LeftMargin = tenth(left)
	page.RightMargin = tenth(right)
	page.Columns = 1
	page.InterColumn = tenth(width / 9)
}

func tenth(x float64) float64 {
	return math.Round(x*10) / 10
}

// Layouts lists the names of the margin presets.
func Layouts() []string {
	return []string{"practice", "two-columns-ninths", "single", "verso", "recto"}
}

// ApplyLayout overwrites the margins and columns of v with a preset,
// computed for the paper and orientation currently set.
func ApplyLayout(v *View, name string) error {
	fn, ok := layouts[presetKey(name)]
	if !ok {
		return fmt.Errorf("unknown layout %q", name)
	}
	width, height, err := v.orientedSize()
	if err != nil {
		return err
	}
	fn(&v.Page, width, height)
	tracer().Debugf("layout %s: %+v", name, v.Page)
	return nil
}
