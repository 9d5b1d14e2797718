package policies

import (
	"time"

	"anonapi/internal/core"
	"anonapi/internal/types"
)

// RowDefaultsPolicy fills the job fields a bulk-added or hand-edited
// row may leave empty, so that every submitted job carries a complete
// parameter set. Each missing field gets its own fallback; the input
// set is never mutated.
type RowDefaultsPolicy struct {
	Clock func() time.Time
}

func NewRowDefaultsPolicy(clock func() time.Time) RowDefaultsPolicy {
	if clock == nil {
		clock = time.Now
	}
	return RowDefaultsPolicy{Clock: clock}
}

// Fill returns a new set where patient name, patient id and description
// are populated with generated placeholders when absent. Parameters
// that already have a value are kept as-is.
func (p RowDefaultsPolicy) Fill(row core.ParameterSet) core.ParameterSet {
	fallbacks := []types.Parameter{
		core.NewParameter(types.FieldPatientName, core.PseudoPatientName()),
		core.NewParameter(types.FieldPatientID, core.PseudoPatientID()),
		core.NewParameter(types.FieldDescription, core.PseudoDescription(p.Clock())),
	}
	var present []types.Parameter
	for _, param := range row.All() {
		if core.HasValue(param) || param.Field == types.FieldSource {
			present = append(present, param)
		}
	}
	return core.NewParameterSet(present, fallbacks)
}
