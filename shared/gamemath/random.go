package gamemath

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	ErrInvalidStdDev = errors.New("standard deviation must be finite and non-negative")
	ErrInvalidRange  = errors.New("uniform range must be finite with low <= high")
)

// Uniform samples from the half-open range [Low, High).
type Uniform struct {
	Low, High float64
}

// NewUniform validates the range.
func NewUniform(low, high float64) (Uniform, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return Uniform{}, fmt.Errorf("uniform(%v, %v): %w", low, high, ErrInvalidRange)
	}
	return Uniform{Low: low, High: high}, nil
}

// Symmetric returns Uniform(-spread, spread).
func Symmetric(spread float64) (Uniform, error) {
	return NewUniform(-spread, spread)
}

func (u Uniform) Sample(r *rand.Rand) float64 {
	return u.Low + r.Float64()*(u.High-u.Low)
}

// Normal is a gaussian distribution.
type Normal struct {
	Mean, StdDev float64
}

// NewNormal validates the standard deviation.
func NewNormal(mean, stdDev float64) (Normal, error) {
	if math.IsNaN(stdDev) || math.IsInf(stdDev, 0) || stdDev < 0 || math.IsNaN(mean) {
		return Normal{}, fmt.Errorf("normal(%v, %v): %w", mean, stdDev, ErrInvalidStdDev)
	}
	return Normal{Mean: mean, StdDev: stdDev}, nil
}

func (n Normal) Sample(r *rand.Rand) float64 {
	return n.Mean + r.NormFloat64()*n.StdDev
}

// Chance reports true with probability num/den.
func Chance(r *rand.Rand, num, den int) bool {
	return r.Intn(den) < num
}
