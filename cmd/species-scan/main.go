package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/NeueNeo/lenia/internal/lenia"
	"github.com/NeueNeo/lenia/internal/species"
)

type scanJob struct {
	speciesName string
	dt          float64
}

func (j scanJob) String() string {
	return fmt.Sprintf("species=%s dt=%.3f", j.speciesName, j.dt)
}

type scanResult struct {
	job scanJob

	initialMass float64
	finalMass   float64
	minMass     float64
	maxMass     float64
	activePeak  int
	activeFinal int
	verdict     string
}

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	width := flag.Int("w", 256, "field width in cells")
	height := flag.Int("h", 256, "field height in cells")
	seed := flag.Int64("seed", 1337, "initialization seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	catalog := species.NewCatalog()
	dtOptions := []float64{0.05, 0.1, 0.2}

	var jobs []scanJob
	for _, name := range catalog.Names() {
		for _, dt := range dtOptions {
			jobs = append(jobs, scanJob{speciesName: name, dt: dt})
		}
	}

	fmt.Printf("Scanning %d scenarios on a %dx%d field (%d workers, %d steps)\n",
		len(jobs), *width, *height, *workers, *steps)

	jobCh := make(chan scanJob)
	resultCh := make(chan scanResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- runScenario(job, *width, *height, *seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	go func() {
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
	}()

	start := time.Now()
	var all []scanResult
	for res := range resultCh {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].job.speciesName != all[j].job.speciesName {
			return all[i].job.speciesName < all[j].job.speciesName
		}
		return all[i].job.dt < all[j].job.dt
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-10s %s mass %.0f -> %.0f (range %.0f..%.0f) active peak=%d final=%d\n",
			res.verdict, res.job, res.initialMass, res.finalMass,
			res.minMass, res.maxMass, res.activePeak, res.activeFinal)
	}
}

func runScenario(job scanJob, width, height int, seed int64, steps int) scanResult {
	cfg := lenia.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg.Species = job.speciesName
	cfg.Params.DT = job.dt

	world := lenia.NewWithConfig(cfg)
	world.Reset(seed)

	const activeThreshold = 0.05

	res := scanResult{job: job}
	res.initialMass = world.Mass()
	res.minMass = res.initialMass
	res.maxMass = res.initialMass

	for step := 0; step < steps; step++ {
		world.StepOnce()
		mass := world.Mass()
		if mass < res.minMass {
			res.minMass = mass
		}
		if mass > res.maxMass {
			res.maxMass = mass
		}
		if active := world.ActiveCells(activeThreshold); active > res.activePeak {
			res.activePeak = active
		}
	}

	res.finalMass = world.Mass()
	res.activeFinal = world.ActiveCells(activeThreshold)

	total := float64(width * height)
	switch {
	case res.finalMass < total*0.0005:
		res.verdict = "collapsed"
	case res.finalMass > total*0.85:
		res.verdict = "saturated"
	default:
		res.verdict = "bounded"
	}
	return res
}
