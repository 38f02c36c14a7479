package gkraccel

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/require"

	"github.com/PolyhedraZK/gkr-accel/hardware"
	"github.com/PolyhedraZK/gkr-accel/utils"
)

// cubicCircuit proves knowledge of x with x**3 + x + 5 == y
type cubicCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (circuit *cubicCircuit) Define(api frontend.API) error {
	x3 := api.Mul(circuit.X, circuit.X, circuit.X)
	api.AssertIsEqual(circuit.Y, api.Add(x3, circuit.X, 5))
	return nil
}

func TestShapeFromCircuit(t *testing.T) {
	shape, err := ShapeFromCircuit(ecc.BN254.ScalarField(), &cubicCircuit{}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, shape.NbLayers)
	require.True(t, utils.IsPowerOfTwo(shape.GatesPerLayer))

	// padded shapes always feed the estimator without error
	_, err = NewEstimate(shape, hardware.DefaultConfig())
	require.NoError(t, err)
}

func TestShapeFromCircuitInvalidLayers(t *testing.T) {
	_, err := ShapeFromCircuit(ecc.BN254.ScalarField(), &cubicCircuit{}, 0)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
