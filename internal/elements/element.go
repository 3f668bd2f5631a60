// Package elements defines the typed chemical element model, the strict
// dataset decoder, and the grid-position table index.
package elements

// Standard-state phases as they appear in the dataset. Other values can
// occur in principle; rendering falls back to a neutral color for them.
const (
	PhaseGas    = "Gas"
	PhaseLiquid = "Liquid"
	PhaseSolid  = "Solid"
)

// ChemicalElement is one fully-decoded element record. Pointer fields
// are optional properties: nil means the dataset carried JSON null and
// the UI omits them entirely.
type ChemicalElement struct {
	Name                  string  `validate:"required"`
	Symbol                string  `validate:"required"`
	Number                int     `validate:"min=1"`
	AtomicMass            float64 `validate:"gt=0"`
	Category              string  `validate:"required"`
	Phase                 string  `validate:"required"`
	Period                int     `validate:"min=1"`
	XPos                  int     `validate:"min=1"`
	YPos                  int     `validate:"min=1"`
	Shells                []int
	IonizationEnergies    []float64
	ElectronConfiguration string

	Summary                  *string
	Source                   *string
	BoilingPoint             *float64
	MeltingPoint             *float64
	Density                  *float64
	MolarHeat                *float64
	ElectronAffinity         *float64
	ElectronegativityPauling *float64
	NamedBy                  *string
	DiscoveredBy             *string
	Appearance               *string
	Color                    *string
	SpectralImage            *string
}
