package gkraccel

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/PolyhedraZK/gkr-accel/utils"
)

// ShapeFromCircuit compiles a gnark circuit and derives a layered shape for
// estimation: the constraints are spread evenly over nbLayers layers and each
// layer is padded to the next power of two, the same padding a GKR layering
// pass would apply.
func ShapeFromCircuit(field *big.Int, circuit frontend.Circuit, nbLayers int, opts ...frontend.CompileOption) (CircuitShape, error) {
	if nbLayers <= 0 {
		return CircuitShape{}, fmt.Errorf("%w: layer count must be positive, got %d", utils.ErrInvalidInput, nbLayers)
	}
	cs, err := frontend.Compile(field, r1cs.NewBuilder, circuit, opts...)
	if err != nil {
		return CircuitShape{}, err
	}
	perLayer := utils.CeilDiv(cs.GetNbConstraints(), nbLayers)
	return CircuitShape{
		NbLayers:      nbLayers,
		GatesPerLayer: utils.NextPowerOfTwo(perLayer),
	}, nil
}
