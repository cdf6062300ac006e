package cluster

import (
	"sort"

	"silentslides/internal/vecmath"
)

// Density implements DBSCAN over Euclidean distance. The neighborhood
// radius is derived from the data itself (median k-distance), so the only
// knob is the minimum number of points that form a dense region. Points that
// belong to no dense region are labeled -1 and handled by the engine.
type Density struct {
	minPoints int
}

// NewDensity creates a density-based strategy. minPoints below 2 is raised
// to 2; a cluster of one is not a cluster.
func NewDensity(minPoints int) *Density {
	if minPoints < 2 {
		minPoints = 2
	}
	return &Density{minPoints: minPoints}
}

func (d *Density) Name() string { return "density" }

// Assign labels every vector with a cluster id or -1 for noise. The target
// hint is ignored: density clustering discovers its own cluster count.
// Scanning order is index-ascending, so results are deterministic.
func (d *Density) Assign(vectors [][]float64, _ int) ([]int, error) {
	n := len(vectors)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	if n == 0 {
		return labels, nil
	}

	eps := d.epsilon(vectors)
	visited := make([]bool, n)
	assigned := make([]bool, n)
	next := 0

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		neighbors := regionQuery(vectors, i, eps)
		if len(neighbors) < d.minPoints {
			continue // stays noise unless reached from a core point later
		}
		labels[i] = next
		assigned[i] = true
		// Expand the cluster through density-reachable points.
		for k := 0; k < len(neighbors); k++ {
			j := neighbors[k]
			if !visited[j] {
				visited[j] = true
				reach := regionQuery(vectors, j, eps)
				if len(reach) >= d.minPoints {
					neighbors = append(neighbors, reach...)
				}
			}
			if !assigned[j] {
				labels[j] = next
				assigned[j] = true
			}
		}
		next++
	}
	return labels, nil
}

// epsilon estimates the neighborhood radius as the median over all points of
// the distance to their minPoints-th nearest neighbor (self included).
// Identical vectors collapse this to 0, which still joins them into one
// cluster because the radius test is inclusive.
func (d *Density) epsilon(vectors [][]float64) float64 {
	n := len(vectors)
	kDist := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		dists := make([]float64, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dists = append(dists, vecmath.Distance(vectors[i], vectors[j]))
		}
		if len(dists) == 0 {
			continue
		}
		sort.Float64s(dists)
		k := d.minPoints - 2 // minPoints counts the point itself
		if k < 0 {
			k = 0
		}
		if k >= len(dists) {
			k = len(dists) - 1
		}
		kDist = append(kDist, dists[k])
	}
	if len(kDist) == 0 {
		return 0
	}
	sort.Float64s(kDist)
	return kDist[len(kDist)/2]
}

func regionQuery(vectors [][]float64, i int, eps float64) []int {
	var neighbors []int
	for j := range vectors {
		if vecmath.Distance(vectors[i], vectors[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
