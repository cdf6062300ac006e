package cluster

import (
	"math"
	"math/rand"

	"silentslides/internal/vecmath"
)

// KMeans is the fixed-k partitional strategy: kmeans++ seeding, Lloyd
// iterations, several initializations with the lowest-inertia result kept.
// The seed is fixed so repeated runs over the same input agree.
type KMeans struct {
	seed     int64
	inits    int
	maxIters int
}

// NewKMeans creates a kmeans strategy with seed 42 and 10 initializations.
func NewKMeans() *KMeans {
	return &KMeans{seed: 42, inits: 10, maxIters: 100}
}

func (k *KMeans) Name() string { return "kmeans" }

// Assign partitions the vectors into min(target, n) clusters. Labels are
// renumbered by first occurrence, never -1: kmeans leaves no noise behind.
func (k *KMeans) Assign(vectors [][]float64, target int) ([]int, error) {
	n := len(vectors)
	if n == 0 {
		return nil, nil
	}
	kk := target
	if kk > n {
		kk = n
	}
	if kk < 1 {
		kk = 1
	}

	rng := rand.New(rand.NewSource(k.seed))
	var best []int
	bestInertia := math.Inf(1)
	for init := 0; init < k.inits; init++ {
		centers := k.seedCenters(rng, vectors, kk)
		labels, inertia := k.lloyd(vectors, centers)
		if inertia < bestInertia {
			bestInertia = inertia
			best = labels
		}
	}
	return renumber(best), nil
}

// seedCenters picks initial centers kmeans++ style: the first uniformly, the
// rest weighted by squared distance to the nearest chosen center.
func (k *KMeans) seedCenters(rng *rand.Rand, vectors [][]float64, kk int) [][]float64 {
	n := len(vectors)
	centers := make([][]float64, 0, kk)
	centers = append(centers, vectors[rng.Intn(n)])

	dist := make([]float64, n)
	for len(centers) < kk {
		total := 0.0
		for i, v := range vectors {
			d := math.Inf(1)
			for _, c := range centers {
				if sq := vecmath.SquaredDistance(v, c); sq < d {
					d = sq
				}
			}
			dist[i] = d
			total += d
		}
		if total == 0 {
			// All points coincide with a center; any pick works.
			centers = append(centers, vectors[rng.Intn(n)])
			continue
		}
		r := rng.Float64() * total
		pick := n - 1
		acc := 0.0
		for i, d := range dist {
			acc += d
			if acc >= r {
				pick = i
				break
			}
		}
		centers = append(centers, vectors[pick])
	}
	return centers
}

// lloyd iterates assignment and mean updates until labels stabilize,
// returning the final labels and inertia (sum of squared distances).
func (k *KMeans) lloyd(vectors, centers [][]float64) ([]int, float64) {
	n := len(vectors)
	kk := len(centers)
	dim := len(vectors[0])
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	means := make([][]float64, kk)
	for c := range means {
		means[c] = append([]float64(nil), centers[c]...)
	}

	for iter := 0; iter < k.maxIters; iter++ {
		changed := false
		for i, v := range vectors {
			bestC, bestD := 0, math.Inf(1)
			for c := range means {
				if d := vecmath.SquaredDistance(v, means[c]); d < bestD {
					bestD = d
					bestC = c
				}
			}
			if labels[i] != bestC {
				labels[i] = bestC
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, kk)
		counts := make([]int, kk)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := labels[i]
			counts[c]++
			for d := range v {
				sums[c][d] += v[d]
			}
		}
		for c := range means {
			if counts[c] == 0 {
				// Empty cluster: restart its center on the point farthest
				// from its current assignment.
				far, farD := 0, -1.0
				for i, v := range vectors {
					if d := vecmath.SquaredDistance(v, means[labels[i]]); d > farD {
						farD = d
						far = i
					}
				}
				means[c] = append([]float64(nil), vectors[far]...)
				continue
			}
			for d := range means[c] {
				means[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	inertia := 0.0
	for i, v := range vectors {
		inertia += vecmath.SquaredDistance(v, means[labels[i]])
	}
	return labels, inertia
}

// renumber maps labels onto 0..k-1 in order of first occurrence so that
// cluster ids follow discovery order regardless of which center they came from.
func renumber(labels []int) []int {
	next := 0
	seen := make(map[int]int)
	out := make([]int, len(labels))
	for i, label := range labels {
		id, ok := seen[label]
		if !ok {
			id = next
			seen[label] = id
			next++
		}
		out[i] = id
	}
	return out
}
