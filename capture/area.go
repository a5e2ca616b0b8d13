package capture

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

var areaRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// ParseArea parses a screen area in geometry form, "WxH+X+Y".
func ParseArea(s string) (image.Rectangle, error) {
	m := areaRe.FindStringSubmatch(strings.TrimSpace(s))
	if len(m) != 5 {
		return image.Rectangle{}, fmt.Errorf("screen area %q: want WxH+X+Y", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w == 0 || h == 0 {
		return image.Rectangle{}, fmt.Errorf("screen area %q: %w", s, ErrEmptyImage)
	}
	return image.Rect(x, y, x+w, y+h), nil
}
