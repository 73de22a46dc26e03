package walk

import (
	"context"
	"encoding/binary"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// TransitionSource is the abstraction the walk engine runs over: either the
// assembled transition matrix (via adjacency.MatrixSource) or a graph's
// outgoing-edge view (via adjacency.GraphSource). OutEdges returns the
// out-neighbors of node and their weights, in any consistent order; a node
// with no entries is treated as dangling.
type TransitionSource interface {
	OutEdges(node int) (targets []int, weights []float64)
}

// Config parameterises a walk run.
type Config struct {
	// NumNodes is the size of the unified node index space (0..NumNodes-1).
	NumNodes int
	// Seeds is the set of starting nodes. A nil or empty slice defaults to
	// every node in the graph, 0..NumNodes-1.
	Seeds []int
	// WalksPerSeed is R, the number of independent walks run from each seed.
	WalksPerSeed int
	// Damping is d, the per-step continuation probability; 1-d is the
	// teleport/restart probability.
	Damping float64
	// RNGSeed seeds the deterministic PRNG; the same seed, graph and
	// hyperparameters always produce the same result.
	RNGSeed [16]byte
	// InitialRank must be nil or hold NumNodes entries. Run checks only its
	// length and does not read its values: every run starts from zero
	// visits.
	InitialRank []float64
	// Parallelism: 0 or 1 runs sequentially; >1 spreads seeds round-robin
	// across that many workers. Each seed draws from its own sub-PRNG derived
	// from RNGSeed and its position in the seed list, so the result does not
	// depend on Parallelism.
	Parallelism int
}

// Result is the outcome of a walk run, indexed by unified node index.
type Result struct {
	Visits []uint64
	Ranks  []float64
}

func (c Config) validate() error {
	if c.NumNodes < 0 {
		return walkErrorf("Run", ErrInvalidConfig)
	}
	if c.WalksPerSeed <= 0 {
		return walkErrorf("Run", ErrInvalidConfig)
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		return walkErrorf("Run", ErrInvalidConfig)
	}
	for _, s := range c.Seeds {
		if s < 0 || s >= c.NumNodes {
			return walkErrorf("Run", ErrInvalidConfig)
		}
	}
	if c.InitialRank != nil && len(c.InitialRank) != c.NumNodes {
		return walkErrorf("Run", ErrInvalidConfig)
	}
	return nil
}

func (c Config) resolvedSeeds() []int {
	if len(c.Seeds) > 0 {
		return c.Seeds
	}
	seeds := make([]int, c.NumNodes)
	for i := range seeds {
		seeds[i] = i
	}
	return seeds
}

// Run executes cfg.WalksPerSeed damped random walks from every seed node
// over src, accumulates visit counts, and derives ranks by total-visit
// normalisation (design note 9's resolved ambiguity: rank(v) = visits(v) /
// total visits across every seed, not a per-seed average).
func Run(ctx context.Context, src TransitionSource, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	seeds := cfg.resolvedSeeds()
	visits := make([]uint64, cfg.NumNodes)

	masterSeed := seedToUint64(cfg.RNGSeed)

	if cfg.Parallelism <= 1 {
		for i, s := range seeds {
			if err := ctx.Err(); err != nil {
				return Result{}, walkErrorf("Run", err)
			}
			rng := rand.New(rand.NewSource(int64(splitmix64(masterSeed + uint64(i)))))
			for j := 0; j < cfg.WalksPerSeed; j++ {
				if err := runOneWalk(src, s, cfg.Damping, rng, visits); err != nil {
					return Result{}, err
				}
			}
		}
	} else {
		shards := make([][]uint64, cfg.Parallelism)
		shardSeeds := make([][]int, cfg.Parallelism)
		for i := range seeds {
			w := i % cfg.Parallelism
			shardSeeds[w] = append(shardSeeds[w], i)
		}

		g, gctx := errgroup.WithContext(ctx)
		for w := 0; w < cfg.Parallelism; w++ {
			w := w
			shards[w] = make([]uint64, cfg.NumNodes)
			g.Go(func() error {
				for _, i := range shardSeeds[w] {
					if err := gctx.Err(); err != nil {
						return err
					}
					s := seeds[i]
					rng := rand.New(rand.NewSource(int64(splitmix64(masterSeed + uint64(i)))))
					for j := 0; j < cfg.WalksPerSeed; j++ {
						if err := runOneWalk(src, s, cfg.Damping, rng, shards[w]); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, walkErrorf("Run", err)
		}

		for w := 0; w < cfg.Parallelism; w++ {
			for n, v := range shards[w] {
				visits[n] += v
			}
		}
	}

	var total uint64
	for _, v := range visits {
		total += v
	}

	ranks := make([]float64, cfg.NumNodes)
	if total > 0 {
		for n, v := range visits {
			ranks[n] = float64(v) / float64(total)
		}
	}

	return Result{Visits: visits, Ranks: ranks}, nil
}

// runOneWalk executes a single walk starting at node s, incrementing
// visits as it goes. The starting node counts as a visit.
func runOneWalk(src TransitionSource, s int, damping float64, rng *rand.Rand, visits []uint64) error {
	if s < 0 || s >= len(visits) {
		return walkErrorf("Run", ErrInvariantViolation)
	}
	cur := s
	visits[cur]++

	for {
		if rng.Float64() >= damping {
			return nil
		}
		targets, weights := src.OutEdges(cur)
		if len(targets) == 0 {
			return nil
		}
		next, err := weightedChoice(targets, weights, rng)
		if err != nil {
			return err
		}
		cur = next
		if cur < 0 || cur >= len(visits) {
			return walkErrorf("Run", ErrInvariantViolation)
		}
		visits[cur]++
	}
}

// weightedChoice picks one of targets with probability proportional to its
// weight, via inverse-CDF sampling. Returns ErrInvariantViolation if
// weights and targets have mismatched lengths or weights sum to <= 0 (a
// node with only zero-weight out-edges behaves as dangling; callers should
// not report it as having out-edges, but this is defended against here
// too).
func weightedChoice(targets []int, weights []float64, rng *rand.Rand) (int, error) {
	if len(targets) != len(weights) {
		return 0, walkErrorf("weightedChoice", ErrInvariantViolation)
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, walkErrorf("weightedChoice", ErrInvariantViolation)
	}

	threshold := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if threshold < cumulative {
			return targets[i], nil
		}
	}
	return targets[len(targets)-1], nil
}

// seedToUint64 folds a 16-byte seed into a single uint64 by XORing its two
// 8-byte halves, giving math/rand's int64 source full use of the supplied
// entropy rather than truncating it to the first 8 bytes.
func seedToUint64(seed [16]byte) uint64 {
	lo := binary.LittleEndian.Uint64(seed[0:8])
	hi := binary.LittleEndian.Uint64(seed[8:16])
	return lo ^ hi
}

// splitmix64 derives a sub-seed from the master seed plus a seed's position
// in the seed list, giving each seed an independent, deterministic PRNG
// stream whichever worker runs it (the "SplitMix-style jump" §5 requires for
// reproducible parallel scheduling).
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
