package lenia

import (
	"math"

	"github.com/NeueNeo/lenia/internal/species"
)

// Empirical seeding constants. They shape the initial configurations, not
// the update rule, so stability is forgiving about their exact values.
const (
	// randBlobLo/Hi bound the uniform noise of the random-blob mode.
	randBlobLo = 0.2
	randBlobHi = 0.7

	// smallBlobBase/Noise define the dense noisy colony blobs used for
	// small-kernel species.
	smallBlobBase  = 0.75
	smallBlobNoise = 0.25

	// speciesBlobNoise scales the sigma-proportional noise of the single
	// large species blob; speciesBlobFloor/Ceil keep seeded values inside
	// a safe band.
	speciesBlobNoise = 4.0
	speciesBlobFloor = 0.02
	speciesBlobCeil  = 0.95
)

// Spawn overwrites the field with the initial configuration for the given
// mode. Both buffers receive identical contents so the first subsequent
// tick reads consistent state. Spawn must run between ticks, never during
// one; the frame-driven loop guarantees that.
func (w *World) Spawn(mode species.SeedMode) {
	w.cur.Clear()
	switch mode {
	case species.SeedClear:
		// Field stays zero.
	case species.SeedBlob:
		w.stampGaussianBlob(w.w/2, w.h/2, float64(w.cfg.Params.SeedRadius), 1.0)
	case species.SeedRandomBlob:
		w.spawnRandomBlob()
	case species.SeedSpeciesBlob:
		w.spawnSpeciesBlob()
	case species.SeedExplicitPattern:
		if w.current.Pattern != nil {
			w.StampPattern(w.current.Pattern)
		} else {
			w.spawnSpeciesBlob()
		}
	}
	w.nxt.CopyFrom(w.cur)
}

// stampGaussianBlob writes a Gaussian-falloff blob centered at (cx, cy).
func (w *World) stampGaussianBlob(cx, cy int, radius, peak float64) {
	if radius <= 0 {
		return
	}
	sigma := radius / 3
	reach := int(math.Ceil(radius))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			r2 := float64(dx*dx + dy*dy)
			if r2 > radius*radius {
				continue
			}
			v := peak * math.Exp(-r2/(2*sigma*sigma))
			w.cur.Set(cx+dx, cy+dy, clamp01(v))
		}
	}
}

// spawnRandomBlob fills one broad centered disc with uniform noise in a
// fixed sub-range.
func (w *World) spawnRandomBlob() {
	radius := minInt(w.w, w.h) / 3
	if radius < 1 {
		radius = 1
	}
	cx, cy := w.w/2, w.h/2
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			w.cur.Set(cx+dx, cy+dy, w.rng.Float64In(randBlobLo, randBlobHi))
		}
	}
}

// spawnSpeciesBlob seeds the field close to the species' attractor basin.
// Small kernels get a 3x3 colony of dense noisy blobs so several organisms
// can develop independently; large kernels get one broad blob whose values
// sit at mu with sigma-scaled noise, which keeps the structure likely to
// stabilize rather than die out or blow up.
func (w *World) spawnSpeciesBlob() {
	sp := w.current
	if sp.R <= w.cfg.Params.SmallKernelR {
		w.spawnSmallKernelColony(sp)
		return
	}
	radius := w.cfg.Params.SpeciesBlobRadius
	maxFit := minInt(w.w, w.h)/2 - 1
	if maxFit >= 1 && radius > maxFit {
		radius = maxFit
	}
	if radius < 1 {
		radius = 1
	}
	cx, cy := w.w/2, w.h/2
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			v := sp.Mu + sp.Sigma*speciesBlobNoise*w.rng.Signed()
			w.cur.Set(cx+dx, cy+dy, clampRange(v, speciesBlobFloor, speciesBlobCeil))
		}
	}
}

// spawnSmallKernelColony places a 3x3 grid of blobs with radius
// proportional to R, spaced so they do not overlap.
func (w *World) spawnSmallKernelColony(sp species.Species) {
	radius := 3 * sp.R
	if radius < 2 {
		radius = 2
	}
	spacing := 2*radius + sp.R
	// Keep the whole arrangement inside the field.
	if limit := minInt(w.w, w.h) / 3; spacing > limit && limit > 0 {
		spacing = limit
	}
	cx, cy := w.w/2, w.h/2
	for gy := -1; gy <= 1; gy++ {
		for gx := -1; gx <= 1; gx++ {
			bx := cx + gx*spacing
			by := cy + gy*spacing
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx*dx+dy*dy > radius*radius {
						continue
					}
					v := smallBlobBase + smallBlobNoise*w.rng.Signed()
					w.cur.Set(bx+dx, by+dy, clamp01(v))
				}
			}
		}
	}
}

// StampPattern writes an explicit 2D pattern centered in the field and
// copies it into both buffers. Cells outside the pattern stay zero;
// pattern cells falling outside the field are ignored, so malformed or
// oversized patterns degrade to a best-effort center-and-clip.
func (w *World) StampPattern(pattern [][]float64) {
	w.cur.Clear()
	rows := len(pattern)
	if rows > 0 {
		cols := 0
		for _, row := range pattern {
			if len(row) > cols {
				cols = len(row)
			}
		}
		top := w.h/2 - rows/2
		left := w.w/2 - cols/2
		for py, row := range pattern {
			y := top + py
			if y < 0 || y >= w.h {
				continue
			}
			for px, v := range row {
				x := left + px
				if x < 0 || x >= w.w {
					continue
				}
				w.cur.Set(x, y, clamp01(sanitize(v)))
			}
		}
	}
	w.nxt.CopyFrom(w.cur)
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
