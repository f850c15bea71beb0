package commitmeta

import (
	"fmt"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
)

// WitnessSource supplies the packed values for a single committed oracle,
// addressed by its descriptor ID.
type WitnessSource interface {
	Witness(id int) (packed.Vector, error)
}

// CollectCommittedWitnesses walks oracles in descriptor order, resolving
// each committed one through source, and returns them arranged by their
// assigned commit index (index[i] == commit index of the returned vector).
func CollectCommittedWitnesses(oracles []OracleDescriptor, index map[int]int, source WitnessSource) ([]packed.Vector, error) {
	total := len(index)
	out := make([]packed.Vector, total)
	filled := make([]bool, total)

	for _, o := range oracles {
		idx, ok := index[o.ID]
		if !ok {
			continue
		}
		v, err := source.Witness(o.ID)
		if err != nil {
			return nil, fmt.Errorf("commitmeta: witness for oracle %d: %w", o.ID, err)
		}
		out[idx] = v
		filled[idx] = true
	}

	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("commitmeta: commit index %d has no assigned witness", i)
		}
	}

	return out, nil
}
