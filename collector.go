package qsearch

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"
)

/*
Collector gathers placements by running the search driver repeatedly.
Every attempt gets its own driver and therefore its own simulator, seeded
from the collector's deterministic seed stream, so attempts share no
mutable state and a fixed-seed collection replays bit-for-bit.
*/
type Collector struct {
	config *Config
	mu     sync.Mutex
	seeds  *rand.Rand
}

func NewCollector(opts ...Option) *Collector {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Collector{
		config: config,
		seeds:  rand.New(rand.NewSource(seed)),
	}
}

func (c *Collector) nextSeed() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seeds.Int63()
}

func (c *Collector) newDriver() *Driver {
	return NewDriver(
		WithSeed(c.nextSeed()),
		WithIterationCap(c.config.MaxIterations),
	)
}

/*
CollectMany runs the driver n times independently and returns the results
in attempt order, duplicates and all. Attempts fan out over at most
Config.Parallelism goroutines; seeds are drawn up front so the result
sequence does not depend on scheduling. The first failed attempt cancels
the stragglers and aborts the whole collection with its error — nothing
is skipped.
*/
func (c *Collector) CollectMany(ctx context.Context, n int) ([]Placement, error) {
	if n <= 0 {
		return nil, nil
	}

	drivers := make([]*Driver, n)
	for i := range drivers {
		drivers[i] = c.newDriver()
	}

	parallelism := c.config.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	results := make([]Placement, n)
	slots := make(chan int)

	for w := 0; w < parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range slots {
				placement, err := drivers[i].Run()
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					cancel()
					return
				}
				results[i] = placement
			}
		}()
	}

	for i := 0; i < n; i++ {
		select {
		case slots <- i:
		case <-ctx.Done():
			i = n
		}
	}
	close(slots)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("collected %d placements", n)
	return results, nil
}

/*
CollectUnique runs up to maxAttempts sequential searches, keeping each
result only if no equal tuple was already kept — a linear scan, order
preserving. It always spends the full attempt budget regardless of how
many uniques turned up, and returns the uniques plus their count. A
failed attempt aborts exactly like CollectMany.
*/
func (c *Collector) CollectUnique(ctx context.Context, maxAttempts int) ([]Placement, int, error) {
	var uniques []Placement

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		placement, err := c.newDriver().Run()
		if err != nil {
			return nil, 0, err
		}

		seen := false
		for _, u := range uniques {
			if u.Equal(placement) {
				seen = true
				break
			}
		}
		if !seen {
			uniques = append(uniques, placement)
		}
	}

	log.Printf("found %d unique placements in %d attempts", len(uniques), maxAttempts)
	return uniques, len(uniques), nil
}

// CollectMany is the package-level entry point over a fresh collector.
func CollectMany(ctx context.Context, n int, opts ...Option) ([]Placement, error) {
	return NewCollector(opts...).CollectMany(ctx, n)
}

// CollectUnique is the package-level entry point over a fresh collector.
func CollectUnique(ctx context.Context, maxAttempts int, opts ...Option) ([]Placement, int, error) {
	return NewCollector(opts...).CollectUnique(ctx, maxAttempts)
}
