package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/spf13/pflag"
)

// zoomValue is a pflag.Value that accepts a factor ("1.5") or a percentage
// ("150%") and clamps it to the supported zoom range.
type zoomValue float64

var _ pflag.Value = (*zoomValue)(nil)

func newZoomValue(initial float64, p *float64) *zoomValue {
	*p = geometry.ClampZoom(initial)
	return (*zoomValue)(p)
}

func (z *zoomValue) String() string {
	return strconv.FormatFloat(float64(*z), 'g', -1, 64)
}

func (z *zoomValue) Set(s string) error {
	s = strings.TrimSpace(s)
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 0.01
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid zoom %q: use a factor like 1.5 or a percentage like 150%%", s)
	}
	*z = zoomValue(geometry.ClampZoom(f * scale))
	return nil
}

func (z *zoomValue) Type() string { return "zoom" }
