// Package script evaluates batches of complex-number operations described
// in YAML. Every operand is a two-element [re, im] sequence of plain YAML
// floats (.nan and .inf included); there is no complex literal syntax.
//
//	- op: sqrt
//	  z: [-4, 0]
//	- op: pow
//	  z: [1, 1]
//	  n: 2
//	- op: div
//	  z: [1, 0]
//	  w: [0, 0]
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	algocomplex "github.com/cwbudde/algo-complex"
)

var (
	// ErrEmptyScript is returned when a script contains no steps.
	ErrEmptyScript = errors.New("script: no steps")

	// ErrUnknownOp is returned for an operation name that is not registered.
	ErrUnknownOp = errors.New("script: unknown operation")

	// ErrMissingOperand is returned when a step lacks the operand its
	// operation requires.
	ErrMissingOperand = errors.New("script: missing operand")

	// ErrExtraOperand is returned when a step carries an operand its
	// operation does not take, or both w and n.
	ErrExtraOperand = errors.New("script: unexpected operand")

	// ErrInvalidWorkers is returned when a Runner has a negative worker count.
	ErrInvalidWorkers = errors.New("script: invalid worker count")
)

// Pair is a complex operand written as [re, im].
type Pair [2]float64

// Complex converts p.
func (p Pair) Complex() algocomplex.Complex {
	return algocomplex.New(p[0], p[1])
}

// PairOf converts z.
func PairOf(z algocomplex.Complex) Pair {
	return Pair{z.Real(), z.Imag()}
}

// Step is one operation. Z is the receiver; W is a complex right-hand
// operand and N a real one. Binary operations take exactly one of them.
type Step struct {
	Op string   `yaml:"op"`
	Z  Pair     `yaml:"z"`
	W  *Pair    `yaml:"w,omitempty"`
	N  *float64 `yaml:"n,omitempty"`
}

// Validate checks that the operation exists and has exactly the operands
// it takes: none beyond z for unary operations, one of w or n for binary
// ones.
func (s Step) Validate() error {
	def, ok := ops[s.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}

	if def.arity == arityBinary && s.W == nil && s.N == nil {
		return fmt.Errorf("%w: %s needs w or n", ErrMissingOperand, s.Op)
	}

	if def.arity == arityBinary && s.W != nil && s.N != nil {
		return fmt.Errorf("%w: %s takes w or n, not both", ErrExtraOperand, s.Op)
	}

	if def.arity == arityUnary && (s.W != nil || s.N != nil) {
		return fmt.Errorf("%w: %s takes only z", ErrExtraOperand, s.Op)
	}

	return nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i, s := range steps {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return steps, nil
}

// Load reads and parses the script at path.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	steps, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return steps, nil
}
