package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// block runes from empty to full, eighths of a cell
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders one distribution as a column chart, one box per
// terminal column, scaled so yMax fills the full height.
func BarChart(col lattice.Dist, height int, yMax float64) string {
	if height < 1 {
		height = 1
	}
	if yMax <= 0 {
		yMax = 1
	}

	n := len(col)
	eighths := make([]int, n)
	for i, v := range col {
		e := int(v/yMax*float64(height*8) + 0.5)
		if e < 0 {
			e = 0
		}
		if e > height*8 {
			e = height * 8
		}
		eighths[i] = e
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		// cell vertical span in eighths, top row first
		base := (height - 1 - row) * 8
		for i := 0; i < n; i++ {
			fill := eighths[i] - base
			if fill < 0 {
				fill = 0
			}
			if fill > 8 {
				fill = 8
			}
			b.WriteRune(blocks[fill])
		}
		b.WriteByte('\n')
	}

	b.WriteString(axisStyle.Render(strings.Repeat("─", n)) + "\n")
	gap := n - len("0") - len(fmt.Sprint(n-1))
	if gap < 1 {
		gap = 1
	}
	b.WriteString(axisStyle.Render("0" + strings.Repeat(" ", gap) + fmt.Sprint(n-1)))
	return b.String()
}

// Slices prints count evenly spaced time slices of the field as labeled
// bar charts, first and last columns included. All slices share one
// vertical scale so heights are comparable across time.
func Slices(w io.Writer, field *lattice.Field, times []float64, count, height int) {
	steps := field.Steps()
	if count < 1 {
		count = 1
	}
	if count > steps {
		count = steps
	}

	idx := make([]int, count)
	if count == 1 {
		idx[0] = steps - 1
	} else {
		for i := range idx {
			idx[i] = i * (steps - 1) / (count - 1)
		}
	}

	yMax := 0.0
	for _, t := range idx {
		for _, v := range field.Column(t) {
			if v > yMax {
				yMax = v
			}
		}
	}

	for _, t := range idx {
		fmt.Fprintln(w, sliceCaption.Render(fmt.Sprintf("t = %.2f  (step %d, ymax %.4f)", times[t], t, yMax)))
		fmt.Fprintln(w, BarChart(field.Column(t), height, yMax))
		fmt.Fprintln(w)
	}
}

// Curve plots a per-step diagnostic as an ascii line chart.
func Curve(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}
