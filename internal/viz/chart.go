package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// RenderPNG writes count evenly spaced time slices of the field as PNG bar
// charts under outDir and returns the created paths. All charts share one
// y range so the slices are visually comparable.
func RenderPNG(field *lattice.Field, times []float64, count int, outDir, prefix string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

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
	if yMax <= 0 {
		yMax = 1
	}

	labelEvery := field.N() / 8
	if labelEvery < 1 {
		labelEvery = 1
	}

	paths := make([]string, 0, count)
	for _, t := range idx {
		col := field.Column(t)
		bars := make([]chart.Value, len(col))
		for i, v := range col {
			label := ""
			if i%labelEvery == 0 {
				label = fmt.Sprint(i)
			}
			bars[i] = chart.Value{Value: v, Label: label}
		}

		graph := chart.BarChart{
			Title:      fmt.Sprintf("t = %.2f (step %d)", times[t], t),
			Width:      900,
			Height:     420,
			BarWidth:   16,
			BarSpacing: 2,
			Background: chart.Style{Padding: chart.Box{Top: 40}},
			YAxis: chart.YAxis{
				Name:  "probability",
				Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			},
			Bars: bars,
		}

		path := filepath.Join(outDir, fmt.Sprintf("%s_step%05d.png", prefix, t))
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		if err := graph.Render(chart.PNG, f); err != nil {
			f.Close()
			return paths, fmt.Errorf("render %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
