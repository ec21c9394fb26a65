package view

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rigelrozanski/nibsheet/guide"
)

var hexColor = regexp.MustCompile(`^#([a-fA-F0-9]{2})([a-fA-F0-9]{2})([a-fA-F0-9]{2})$`)

// ParseHexColor reads a color of the form #rrggbb. An empty string is black.
func ParseHexColor(s string) (guide.RGB, error) {
	if s == "" {
		return guide.Black, nil
	}
	match := hexColor.FindStringSubmatch(s)
	if match == nil {
		return guide.Black, fmt.Errorf("not a #rrggbb color: %q", s)
	}
	var rgb [3]uint8
	for i := range rgb {
		c, err := strconv.ParseUint(match[i+1], 16, 8)
		if err != nil {
			return guide.Black, err
		}
		rgb[i] = uint8(c)
	}
	return guide.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}
