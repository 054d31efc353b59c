package mlsi

import (
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// Split cuts each of lines at every BETWEEN incidence it participates in,
// returning one slice of ordered sub-segments per input line (split
// pieces follow the parent's direction and appear in the order they occur
// along it). A line with no BETWEEN incidences is returned unchanged as a
// single-element slice. len(result) == len(lines) always.
func Split(lines []geom.LineD, incidences []LineIncidence, opts ...Option) [][]geom.LineD {
	cfg := resolve(opts)

	cuts := make([][]float64, len(lines))
	for _, inc := range incidences {
		addCut(cuts, lines, inc.Line1, inc.Shared, inc.Loc1, cfg.eps)
		addCut(cuts, lines, inc.Line2, inc.Shared, inc.Loc2, cfg.eps)
	}

	out := make([][]geom.LineD, len(lines))
	for i, line := range lines {
		ts := cuts[i]
		if len(ts) == 0 {
			out[i] = []geom.LineD{line}

			continue
		}
		sort.Float64s(ts)
		ts = dedupSorted(ts, cfg.eps)

		v := line.Vector()
		pts := make([]geom.PointD, 0, len(ts)+2)
		pts = append(pts, line.Start)
		for _, t := range ts {
			pts = append(pts, line.Start.Add(v.Scale(t)))
		}
		pts = append(pts, line.End)

		segs := make([]geom.LineD, 0, len(pts)-1)
		for k := 0; k < len(pts)-1; k++ {
			segs = append(segs, geom.LineD{Start: pts[k], End: pts[k+1]})
		}
		out[i] = segs
	}

	return out
}

func addCut(cuts [][]float64, lines []geom.LineD, idx int, p geom.PointD, loc geom.LineLocation, eps float64) {
	if loc != geom.LocationBetween {
		return
	}
	line := lines[idx]
	v := line.Vector()
	vlen2 := v.Dot(v)
	if vlen2 == 0 {
		return
	}
	t := p.Sub(line.Start).Dot(v) / vlen2
	_ = eps
	cuts[idx] = append(cuts[idx], t)
}

func dedupSorted(ts []float64, eps float64) []float64 {
	out := ts[:0:0]
	for _, t := range ts {
		if len(out) > 0 && math.Abs(out[len(out)-1]-t) <= eps {
			continue
		}
		out = append(out, t)
	}

	return out
}
