package qsearch

// Config carries the knobs shared by the simulator, the search driver and
// the collector.
type Config struct {
	// Seed feeds every measurement draw. Zero means "seed from the clock",
	// anything else makes a run fully reproducible.
	Seed int64
	// MaxIterations is the driver's retry ceiling on the Grover iteration
	// count. The theoretical optimum for this problem is k=1; the ceiling
	// of 10 is a safety margin against sampling variance.
	MaxIterations int
	// MaxQubits caps how many simultaneous qubits a simulator will hold.
	// The amplitude vector is 2^qubits complex values, so this is a memory
	// guard, not a tuning knob.
	MaxQubits int
	// Parallelism bounds how many independent search attempts CollectMany
	// may run at once. Each attempt owns its own simulator.
	Parallelism int
	// Tolerance is the floating-point slack for unitarity and ancilla
	// cleanliness checks.
	Tolerance float64
}

func NewConfig() *Config {
	return &Config{
		Seed:          0,
		MaxIterations: 10,
		MaxQubits:     16,
		Parallelism:   1,
		Tolerance:     1e-9,
	}
}

// Option configures a Driver or Collector.
type Option func(*Config)

// WithSeed pins the pseudorandom source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithIterationCap overrides the driver's retry ceiling.
func WithIterationCap(limit int) Option {
	return func(c *Config) {
		c.MaxIterations = limit
	}
}

// WithParallelism sets how many attempts CollectMany runs concurrently.
func WithParallelism(n int) Option {
	return func(c *Config) {
		c.Parallelism = n
	}
}
