package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty input sequence.
	ErrEmptyInput = errors.New("morph: input sequence must be non-empty")
	// ErrBadElement indicates a structuring element length < 1.
	ErrBadElement = errors.New("morph: structuring element length must be >= 1")
	// ErrUnknownOp indicates an Op outside the defined set.
	ErrUnknownOp = errors.New("morph: unknown operation")
)

// Op selects a morphological operation for Apply.
type Op int

const (
	// Dilation grows true runs by the structuring length.
	Dilation Op = iota
	// Erosion shrinks true runs; runs shorter than the element vanish.
	Erosion
	// Opening is erosion followed by dilation.
	Opening
	// Closing is dilation followed by erosion, ORed with the input.
	Closing
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case Dilation:
		return "dilation"
	case Erosion:
		return "erosion"
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// window returns the reach of a structuring element of length p around
// its center: left samples up-sequence, right samples down-sequence.
// Even lengths extend one sample further down-sequence.
func window(p int) (left, right int) {
	return (p - 1) / 2, p / 2
}

// Dilate sets each sample true if any sample within the structuring
// window is true. Samples beyond the sequence boundary count as false
// (bounded line, no wraparound).
func Dilate(seq []bool, p int) ([]bool, error) {
	if err := validate(seq, p); err != nil {
		return nil, err
	}

	left, right := window(p)
	out := make([]bool, len(seq))
	for i := range seq {
		for j := max(0, i-left); j <= min(len(seq)-1, i+right); j++ {
			if seq[j] {
				out[i] = true
				break
			}
		}
	}

	return out, nil
}

// Erode sets each sample true only if every sample within the
// structuring window is true. Samples beyond the boundary count as
// false, so true runs abutting the ends shrink like interior runs.
func Erode(seq []bool, p int) ([]bool, error) {
	if err := validate(seq, p); err != nil {
		return nil, err
	}

	left, right := window(p)
	out := make([]bool, len(seq))
	for i := range seq {
		all := true
		for j := i - left; j <= i+right; j++ {
			if j < 0 || j >= len(seq) || !seq[j] {
				all = false
				break
			}
		}
		out[i] = all
	}

	return out, nil
}

// Open performs erosion then dilation: thin true runs are removed,
// surviving runs keep their extent.
func Open(seq []bool, p int) ([]bool, error) {
	eroded, err := Erode(seq, p)
	if err != nil {
		return nil, err
	}

	return Dilate(eroded, p)
}

// Close performs dilation then erosion and ORs the result with the
// input: thin false runs are filled, and no true sample of the input is
// ever lost to boundary erosion.
func Close(seq []bool, p int) ([]bool, error) {
	dilated, err := Dilate(seq, p)
	if err != nil {
		return nil, err
	}
	out, err := Erode(dilated, p)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i] || seq[i]
	}

	return out, nil
}

// Apply dispatches op over seq with structuring length p.
func Apply(seq []bool, op Op, p int) ([]bool, error) {
	switch op {
	case Dilation:
		return Dilate(seq, p)
	case Erosion:
		return Erode(seq, p)
	case Opening:
		return Open(seq, p)
	case Closing:
		return Close(seq, p)
	default:
		return nil, fmt.Errorf("%v: %w (valid: dilation, erosion, opening, closing)", op, ErrUnknownOp)
	}
}

func validate(seq []bool, p int) error {
	if len(seq) == 0 {
		return ErrEmptyInput
	}
	if p < 1 {
		return fmt.Errorf("p=%d: %w", p, ErrBadElement)
	}

	return nil
}
