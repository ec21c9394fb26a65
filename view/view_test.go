package view

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rigelrozanski/nibsheet/guide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelTwoColumnsA4(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nibsheet.view")
	defer teardown()
	//
	v := Default()
	v.Page.Columns = 2
	v.Page.InterColumn = 5
	m, err := ToModel(v)
	require.NoError(t, err)
	w, h := m.Page.Size()
	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
	require.Len(t, m.Columns, 2)
	for _, col := range m.Columns {
		assert.InDelta(t, 89.8, col.Width(), 1e-9)
		assert.InDelta(t, 297-2*12.7, col.Height(), 1e-9)
	}
	assert.InDelta(t, 12.7, m.Columns[0].Left, 1e-9)
	assert.InDelta(t, 12.7+89.8+5, m.Columns[1].Left, 1e-9)
	assert.InDelta(t, 210-12.7, m.Columns[1].Right, 1e-9)
}

func TestToModelLandscape(t *testing.T) {
	v := Default()
	v.Orientation = "L"
	m, err := ToModel(v)
	require.NoError(t, err)
	w, h := m.Page.Size()
	assert.Equal(t, 297.0, w)
	assert.Equal(t, 210.0, h)
	assert.Equal(t, guide.Landscape, m.Page.Orientation)
	assert.InDelta(t, 297-2*12.7, m.Columns[0].Width(), 1e-9)
}

func TestToModelOtherPaper(t *testing.T) {
	v := Default()
	v.PaperSize = PaperSize{Name: "Other", Width: 100, Height: 150}
	m, err := ToModel(v)
	require.NoError(t, err)
	assert.Equal(t, OtherPaper, m.Page.Name)
	assert.InDelta(t, 100-2*12.7, m.Columns[0].Width(), 1e-9)
}

func TestToModelScalesByNibWidth(t *testing.T) {
	v := Default()
	v.NibWidth = 2
	m, err := ToModel(v)
	require.NoError(t, err)
	require.Len(t, m.Lines, len(v.GuideLines))
	for i, line := range m.Lines {
		assert.Equal(t, v.GuideLines[i].Position*2, line.Position)
		assert.Equal(t, v.GuideLines[i].LineWidth, line.LineWidth)
	}
	assert.Equal(t, guide.Dashed, m.Lines[1].Style)
	require.NotNil(t, m.Slant)
	assert.True(t, m.Slant.ToVertical)
	assert.Equal(t, 5.0, m.Slant.Distance)
	require.NotNil(t, m.NibAngle)
	assert.False(t, m.NibAngle.ToVertical)
	assert.Equal(t, 20.0, m.NibAngle.Distance)
	assert.Equal(t, guide.RGB{R: 255}, m.NibAngle.Color)
}

func TestToModelDisabledGuides(t *testing.T) {
	v := Default()
	v.Slant.Enabled = false
	v.NibAngle.Enabled = false
	v.NibAngle.Distance = 0 // ignored when disabled
	m, err := ToModel(v)
	require.NoError(t, err)
	assert.Nil(t, m.Slant)
	assert.Nil(t, m.NibAngle)
}

func TestToModelDefaultsColorToBlack(t *testing.T) {
	v := Default()
	v.Slant.Color = ""
	v.GuideLines[0].Color = ""
	m, err := ToModel(v)
	require.NoError(t, err)
	assert.Equal(t, guide.Black, m.Slant.Color)
	assert.Equal(t, guide.Black, m.Lines[0].Color)
}

func TestToModelErrors(t *testing.T) {
	broken := []struct {
		field   string
		breakIt func(v *View)
	}{
		{"page.columns", func(v *View) { v.Page.Columns = 0 }},
		{"paper-size.name", func(v *View) { v.PaperSize.Name = "a9" }},
		{"paper-size", func(v *View) { v.PaperSize = PaperSize{Name: "other"} }},
		{"paper-size", func(v *View) { v.PaperSize = PaperSize{Name: "other", Width: math.NaN(), Height: 100} }},
		{"orientation", func(v *View) { v.Orientation = "X" }},
		{"nib-width", func(v *View) { v.NibWidth = 0 }},
		{"nib-width", func(v *View) { v.NibWidth = math.Inf(1) }},
		{"guide-lines[1].style", func(v *View) { v.GuideLines[1].Style = "wavy" }},
		{"guide-lines[2].color", func(v *View) { v.GuideLines[2].Color = "red" }},
		{"guide-lines[0].line-width", func(v *View) { v.GuideLines[0].LineWidth = math.NaN() }},
		{"slant-guide.distance-type", func(v *View) { v.Slant.DistanceType = "diagonal" }},
		{"page.left-margin", func(v *View) { v.Page.LeftMargin = -1 }},
		{"page.top-margin", func(v *View) { v.Page.TopMargin = math.NaN() }},
		{"page.inter-column", func(v *View) { v.Page.InterColumn = math.Inf(1) }},
		{"page", func(v *View) { v.Page.LeftMargin = 200 }},
		{"guide-lines", func(v *View) { v.GuideLines = v.GuideLines[:1] }},
		{"guide-lines", func(v *View) {
			v.GuideLines = []GuideLineView{{Position: 0, LineWidth: 0.3}, {Position: 1e-9, LineWidth: 0.3}}
		}},
		{"slant-guide.distance", func(v *View) { v.Slant.Distance = 0 }},
		{"slant-guide.distance", func(v *View) {
			v.Slant.Angle = 89.9999
			v.Slant.DistanceType = "horizontal"
		}},
		{"slant-guide.line-width", func(v *View) { v.Slant.LineWidth = math.NaN() }},
		{"nib-angle-guide.distance", func(v *View) { v.NibAngle.Distance = math.Inf(1) }},
		{"nib-angle-guide.angle", func(v *View) { v.NibAngle.Angle = 90 }},
		{"nib-angle-guide.color", func(v *View) { v.NibAngle.Color = "#12345" }},
	}
	for _, c := range broken {
		v := Default()
		c.breakIt(&v)
		m, err := ToModel(v)
		assert.Nil(t, m, c.field)
		var cfgErr *guide.InvalidLayoutConfig
		require.True(t, errors.As(err, &cfgErr), "%s: %v", c.field, err)
		assert.Equal(t, c.field, cfgErr.Field)
	}
}

func TestToModelRejectsNonFiniteYAML(t *testing.T) {
	v, err := Parse([]byte("nib-angle-guide: {distance: .inf}\nslant-guide: {line-width: .nan}\n"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.NibAngle.Distance, 1))
	m, err := ToModel(v)
	assert.Nil(t, m)
	var cfgErr *guide.InvalidLayoutConfig
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "slant-guide.line-width", cfgErr.Field)
	//
	v.Slant.LineWidth = 0.2
	_, err = ToModel(v)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "nib-angle-guide.distance", cfgErr.Field)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, guide.RGB{R: 255, G: 128, B: 0}, c)
	c, err = ParseHexColor("")
	require.NoError(t, err)
	assert.Equal(t, guide.Black, c)
	for _, bad := range []string{"FF8000", "#FF80", "#GG0000", "#FF800000"} {
		_, err = ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestPapers(t *testing.T) {
	names := []string{}
	for _, p := range Papers() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a3", "a4", "legal", "letter"}, names)
	p, ok := LookupPaper(" LETTER ")
	require.True(t, ok)
	assert.Equal(t, 215.9, p.Width)
	_, ok = LookupPaper("b5")
	assert.False(t, ok)
}

func TestApplyLayout(t *testing.T) {
	v := Default()
	require.NoError(t, ApplyLayout(&v, "two-columns-ninths"))
	assert.Equal(t, 2, v.Page.Columns)
	assert.Equal(t, 33.0, v.Page.TopMargin)    // 297/9
	assert.Equal(t, 66.0, v.Page.BottomMargin) // 297/4.5
	assert.Equal(t, 23.3, v.Page.LeftMargin)   // 210/9
	assert.Equal(t, 23.3, v.Page.InterColumn)
	_, err := ToModel(v)
	require.NoError(t, err)
	//
	v.Orientation = "L"
	require.NoError(t, ApplyLayout(&v, "Verso"))
	assert.Equal(t, 1, v.Page.Columns)
	assert.Equal(t, 66.0, v.Page.LeftMargin) // 297/4.5
	assert.Equal(t, 33.0, v.Page.RightMargin)
	assert.Equal(t, 23.3, v.Page.TopMargin) // 210/9
	//
	require.NoError(t, ApplyLayout(&v, "practice"))
	assert.Equal(t, defaultMargin, v.Page.LeftMargin)
	assert.Error(t, ApplyLayout(&v, "gatefold"))
	assert.Len(t, Layouts(), len(layouts))
}

func TestParseAndLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nibsheet.view")
	defer teardown()
	//
	data := []byte(`
paper-size:
  name: letter
orientation: L
nib-width: 2
guide-lines:
  - position: 5
    style: plain
    line-width: 0.3
  - position: 0
    style: dotted
    line-width: 0.5
    color: "#0000FF"
page:
  columns: 3
  inter-column: 4
slant-guide:
  enabled: false
`)
	v, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "letter", v.PaperSize.Name)
	assert.Len(t, v.GuideLines, 2)
	assert.False(t, v.Slant.Enabled)
	assert.True(t, v.NibAngle.Enabled) // kept from Default
	assert.Equal(t, defaultMargin, v.Page.TopMargin)
	m, err := ToModel(v)
	require.NoError(t, err)
	assert.Len(t, m.Columns, 3)
	assert.Equal(t, guide.RGB{B: 255}, m.Lines[1].Color)
	assert.Equal(t, guide.Dotted, m.Lines[1].Style)
	//
	filename := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(filename, data, 0644))
	loaded, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, v, loaded)
	//
	out, err := Marshal(v)
	require.NoError(t, err)
	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, v, again)
	//
	_, err = Parse([]byte("page: [1, 2"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
