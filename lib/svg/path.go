package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"oss.terrastruct.com/timeline/lib/geo"
)

// chopPrecision rounds to 4 decimals so output is stable across platforms.
func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// PathData encodes path commands as the d attribute of an SVG path.
func PathData(cmds []geo.PathCmd) string {
	parts := make([]string, 0, len(cmds))
	for _, c := range cmds {
		switch c.Op {
		case geo.MoveTo:
			parts = append(parts, fmt.Sprintf("M %v %v", chopPrecision(c.To.X), chopPrecision(c.To.Y)))
		case geo.LineTo:
			parts = append(parts, fmt.Sprintf("L %v %v", chopPrecision(c.To.X), chopPrecision(c.To.Y)))
		case geo.QuadTo:
			parts = append(parts, fmt.Sprintf("Q %v %v %v %v",
				chopPrecision(c.Ctrl.X), chopPrecision(c.Ctrl.Y),
				chopPrecision(c.To.X), chopPrecision(c.To.Y),
			))
		}
	}
	return strings.Join(parts, " ")
}

// Num formats f for an attribute value.
func Num(f float64) string {
	return strconv.FormatFloat(chopPrecision(f), 'f', -1, 64)
}

// EscapeText escapes s for use as element content.
func EscapeText(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
