package driver

import (
	"fmt"

	"github.com/katalvlaran/ngramlattice/loader"
)

// resolveConstraints computes sentence id's per-chunk reorderable/frozen
// vector, grounded on Decoder's constructor-time constraints selection
// (Constraints.cpp's Constraints/ChunkConstraints hierarchy).
func resolveConstraints(cfg Config, id int, numChunks int, constraintsFile [][]bool) ([]bool, error) {
	switch cfg.ConstraintsStrategy {
	case "from_file":
		if id-1 >= len(constraintsFile) || id-1 < 0 {
			return nil, fmt.Errorf("driver: constraints file has no line for sentence %d", id)
		}
		bits := constraintsFile[id-1]
		if len(bits) != numChunks {
			return nil, fmt.Errorf("driver: constraints for sentence %d cover %d chunks, sentence has %d", id, len(bits), numChunks)
		}
		return bits, nil
	default: // "all_reorderable" or ""
		return loader.AllReorderable(numChunks), nil
	}
}
