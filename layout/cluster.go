package layout

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/snapgrid/snapgrid/model"
)

// Default clustering parameters. Row tolerance is a multiple of the mean
// fragment height; the column gap ratio is a multiple of the average
// character width.
const (
	DefaultRowHeightRatio = 0.6
	DefaultColumnGapRatio = 1.0
)

// defaultCharWidth is assumed when no fragment carries any text.
const defaultCharWidth = 10

// Cluster is an ordered group of fragment indices assigned to one row,
// together with the centroid of their y-centers. Clusters partition the
// fragment set: every index appears in exactly one cluster.
type Cluster struct {
	Centroid float64
	Indices  []int
}

// ClusterRows partitions fragments into rows by y-center. Fragments are
// sorted by y-center and folded into clusters: a fragment joins the current
// cluster when its y-center is within heightRatio times the mean fragment
// height of the cluster's running centroid, otherwise it starts a new one.
// A fragment equidistant between two candidates joins the earlier cluster.
// Within each cluster, indices are ordered by x-center.
//
// A non-positive heightRatio selects DefaultRowHeightRatio.
func ClusterRows(fragments []model.Fragment, heightRatio float64) []Cluster {
	if len(fragments) == 0 {
		return nil
	}
	if heightRatio <= 0 {
		heightRatio = DefaultRowHeightRatio
	}

	heights := make([]float64, len(fragments))
	for i, f := range fragments {
		heights[i] = f.BBox.Height
	}
	tolerance := stat.Mean(heights, nil) * heightRatio

	order := make([]int, len(fragments))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fragments[order[a]].BBox.CenterY() < fragments[order[b]].BBox.CenterY()
	})

	var clusters []Cluster
	for _, idx := range order {
		cy := fragments[idx].BBox.CenterY()
		if n := len(clusters); n > 0 {
			cur := &clusters[n-1]
			if math.Abs(cy-cur.Centroid) < tolerance {
				count := float64(len(cur.Indices))
				cur.Centroid = (cur.Centroid*count + cy) / (count + 1)
				cur.Indices = append(cur.Indices, idx)
				continue
			}
		}
		clusters = append(clusters, Cluster{Centroid: cy, Indices: []int{idx}})
	}

	for _, c := range clusters {
		sort.SliceStable(c.Indices, func(a, b int) bool {
			return fragments[c.Indices[a]].BBox.CenterX() < fragments[c.Indices[b]].BBox.CenterX()
		})
	}
	return clusters
}

// ClusterColumns merges fragment x-centers into column positions across the
// whole fragment set. Unlike rows, column widths vary with content, so the
// merge tolerance is derived from the data: gaps between consecutive sorted
// x-centers wider than gapRatio times the average character width are taken
// as column separators, and half of their median becomes the tolerance.
// The tolerance never drops below the character-width gap floor or the mean
// fragment height; height is a stable measure of type size, and centers of
// cells in one column scatter by about that much. Centers within tolerance
// of the running centroid collapse into one column.
//
// The returned centers are sorted ascending. A non-positive gapRatio selects
// DefaultColumnGapRatio.
func ClusterColumns(fragments []model.Fragment, gapRatio float64) []float64 {
	if len(fragments) == 0 {
		return nil
	}
	if gapRatio <= 0 {
		gapRatio = DefaultColumnGapRatio
	}

	centers := make([]float64, len(fragments))
	for i, f := range fragments {
		centers[i] = f.BBox.CenterX()
	}
	sort.Float64s(centers)

	minGap := AverageCharWidth(fragments) * gapRatio

	var separators []float64
	for i := 1; i < len(centers); i++ {
		if gap := centers[i] - centers[i-1]; gap > minGap {
			separators = append(separators, gap)
		}
	}

	heights := make([]float64, len(fragments))
	for i, f := range fragments {
		heights[i] = f.BBox.Height
	}
	tolerance := math.Max(minGap, stat.Mean(heights, nil))
	if len(separators) > 0 {
		sort.Float64s(separators)
		if half := stat.Quantile(0.5, stat.Empirical, separators, nil) / 2; half > tolerance {
			tolerance = half
		}
	}

	var centroids []float64
	var count float64
	for _, cx := range centers {
		if n := len(centroids); n > 0 && cx-centroids[n-1] <= tolerance {
			centroids[n-1] = (centroids[n-1]*count + cx) / (count + 1)
			count++
			continue
		}
		centroids = append(centroids, cx)
		count = 1
	}
	return centroids
}

// NearestColumn returns the index of the column center closest to x.
// Ties resolve to the earlier column.
func NearestColumn(centers []float64, x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range centers {
		if d := math.Abs(x - c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// AverageCharWidth estimates the width of one character across the fragment
// set: total box width divided by total rune count. Fragment sets with no
// text at all fall back to a fixed width so ratios stay usable.
func AverageCharWidth(fragments []model.Fragment) float64 {
	var width float64
	var runes int
	for _, f := range fragments {
		width += f.BBox.Width
		runes += len([]rune(f.Text))
	}
	if runes == 0 {
		return defaultCharWidth
	}
	return width / float64(runes)
}
