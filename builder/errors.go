package builder

import "errors"

// ErrTooSmall indicates a non-positive dimension or scale.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic layer was used without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOutOfBounds indicates a rectangle or cell outside the canvas.
var ErrOutOfBounds = errors.New("builder: coordinates out of bounds")

// ErrInvalidTerrain indicates a layer was asked to paint an unknown terrain kind.
var ErrInvalidTerrain = errors.New("builder: invalid terrain kind")

// ErrConstructFailed indicates a nil layer.
var ErrConstructFailed = errors.New("builder: construction failed")
