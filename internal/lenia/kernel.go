package lenia

import "math"

const (
	// sigmaEpsilon is the floor applied to bell widths before division.
	sigmaEpsilon = 1e-9
	// kernelSumEpsilon guards the potential normalization against a
	// degenerate all-zero kernel.
	kernelSumEpsilon = 1e-9
	// maxKernelRadius caps R for cost control; the convolution is
	// O(W*H*R^2) per tick.
	maxKernelRadius = 64
)

// bell is the unnormalized Gaussian exp(-((x-c)/s)^2 / 2).
func bell(x, center, width float64) float64 {
	if width < sigmaEpsilon {
		width = sigmaEpsilon
	}
	d := (x - center) / width
	return math.Exp(-d * d / 2)
}

// Kernel evaluates the ring-shell weight at normalized radius r. The kernel
// is a sum of concentric Gaussian rings, one per beta entry, with ring i
// centered at (i+0.5)/len(beta). Weights are zero at and beyond r = 1.
func Kernel(r float64, beta []float64, kernelSigma float64) float64 {
	if r >= 1 || len(beta) == 0 {
		return 0
	}
	n := float64(len(beta))
	var w float64
	for i, b := range beta {
		if b <= 0 {
			continue
		}
		w += b * bell(r, (float64(i)+0.5)/n, kernelSigma)
	}
	return w
}

type kernelOffset struct {
	dx, dy int
	weight float64
}

// kernelTable caches the offset-to-weight mapping for one parameter set.
// The weight depends only on (dx, dy, R, beta, kernelSigma), never on the
// cell position, so it is built once per parameter generation.
type kernelTable struct {
	radius  int
	offsets []kernelOffset
	sum     float64
}

func buildKernelTable(radius int, beta []float64, kernelSigma float64) kernelTable {
	if radius < 1 {
		radius = 1
	}
	if radius > maxKernelRadius {
		radius = maxKernelRadius
	}
	t := kernelTable{radius: radius}
	rf := float64(radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			dist := math.Hypot(float64(dx), float64(dy))
			if dist > rf {
				continue
			}
			w := Kernel(dist/rf, beta, kernelSigma)
			if w <= 0 {
				continue
			}
			t.offsets = append(t.offsets, kernelOffset{dx: dx, dy: dy, weight: w})
			t.sum += w
		}
	}
	return t
}
