package ledger

import "math/big"

// HyperParams holds the five edge-factor weights from the paper as exact
// rationals. Each must lie in (0,1]; Validate checks this.
type HyperParams struct {
	ContribFactor       *big.Rat
	ContribPrimeFactor  *big.Rat
	DependFactor        *big.Rat
	MaintainFactor      *big.Rat
	MaintainPrimeFactor *big.Rat
}

// FloatHyperParams is the float64-converted form adjacency.Build consumes.
// Produced exactly once, by Floats; never converted back to a HyperParams.
type FloatHyperParams struct {
	ContribFactor       float64
	ContribPrimeFactor  float64
	DependFactor        float64
	MaintainFactor      float64
	MaintainPrimeFactor float64
}

// DefaultHyperParams returns the paper's defaults: contrib=1/7,
// contrib'=2/5, depend=4/7, maintain=2/7, maintain'=3/5.
func DefaultHyperParams() HyperParams {
	return HyperParams{
		ContribFactor:       big.NewRat(1, 7),
		ContribPrimeFactor:  big.NewRat(2, 5),
		DependFactor:        big.NewRat(4, 7),
		MaintainFactor:      big.NewRat(2, 7),
		MaintainPrimeFactor: big.NewRat(3, 5),
	}
}

// Validate reports ErrInvalidHyperparam if any field is nil, <=0, or >1.
func (h HyperParams) Validate() error {
	fields := []*big.Rat{
		h.ContribFactor, h.ContribPrimeFactor, h.DependFactor,
		h.MaintainFactor, h.MaintainPrimeFactor,
	}
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	for _, f := range fields {
		if f == nil {
			return ErrInvalidHyperparam
		}
		if f.Cmp(zero) <= 0 || f.Cmp(one) > 0 {
			return ErrInvalidHyperparam
		}
	}
	return nil
}

// Floats converts every field to float64, the single boundary crossing from
// exact rational to floating point that the rest of the pipeline uses.
func (h HyperParams) Floats() FloatHyperParams {
	f := func(r *big.Rat) float64 {
		v, _ := r.Float64()
		return v
	}
	return FloatHyperParams{
		ContribFactor:       f(h.ContribFactor),
		ContribPrimeFactor:  f(h.ContribPrimeFactor),
		DependFactor:        f(h.DependFactor),
		MaintainFactor:      f(h.MaintainFactor),
		MaintainPrimeFactor: f(h.MaintainPrimeFactor),
	}
}
