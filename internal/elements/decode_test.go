package elements

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/ptable/pkg/gridmodel"
)

// hydrogen returns a well-formed raw element record. Tests mutate a
// copy to produce specific schema violations.
func hydrogen() map[string]any {
	return map[string]any{
		"name":                      "Hydrogen",
		"symbol":                    "H",
		"number":                    1,
		"atomic_mass":               1.008,
		"category":                  "diatomic nonmetal",
		"phase":                     "Gas",
		"period":                    1,
		"xpos":                      1,
		"ypos":                      1,
		"shells":                    []int{1},
		"ionization_energies":       []float64{1312.0},
		"electron_configuration":    "1s1",
		"summary":                   "Hydrogen is the lightest element.",
		"source":                    "https://en.wikipedia.org/wiki/Hydrogen",
		"boil":                      20.271,
		"melt":                      13.99,
		"density":                   0.08988,
		"molar_heat":                28.836,
		"electron_affinity":         72.769,
		"electronegativity_pauling": 2.2,
		"named_by":                  "Antoine Lavoisier",
		"discovered_by":             "Henry Cavendish",
		"appearance":                "colorless gas",
		"color":                     nil,
		"spectral_img":              "https://en.wikipedia.org/wiki/File:Hydrogen_Spectra.jpg",
	}
}

func helium() map[string]any {
	el := hydrogen()
	el["name"] = "Helium"
	el["symbol"] = "He"
	el["number"] = 2
	el["atomic_mass"] = 4.0026022
	el["category"] = "noble gas"
	el["xpos"] = 18
	el["shells"] = []int{2}
	el["boil"] = 4.222
	el["melt"] = nil
	el["named_by"] = nil
	return el
}

func dataset(t *testing.T, els ...map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{"elements": els})
	require.NoError(t, err)
	return data
}

func TestDecodeWellFormedDataset(t *testing.T) {
	els, err := DecodeDataset(dataset(t, hydrogen(), helium()))
	require.NoError(t, err)
	require.Len(t, els, 2)

	h := els[0]
	assert.Equal(t, "Hydrogen", h.Name)
	assert.Equal(t, "H", h.Symbol)
	assert.Equal(t, 1, h.Number)
	assert.InDelta(t, 1.008, h.AtomicMass, 1e-9)
	assert.Equal(t, PhaseGas, h.Phase)
	assert.Equal(t, gridmodel.Pos(1, 1), gridmodel.Pos(h.YPos, h.XPos))

	require.NotNil(t, h.BoilingPoint)
	assert.InDelta(t, 20.271, *h.BoilingPoint, 1e-9)
	require.NotNil(t, h.DiscoveredBy)
	assert.Equal(t, "Henry Cavendish", *h.DiscoveredBy)
	assert.Nil(t, h.Color, "JSON null must decode to an absent property")

	he := els[1]
	assert.Equal(t, "He", he.Symbol)
	assert.Nil(t, he.MeltingPoint)
	assert.Nil(t, he.NamedBy)
	require.NotNil(t, he.BoilingPoint)
	assert.InDelta(t, 4.222, *he.BoilingPoint, 1e-9)
}

func TestDecodeNullOptionalIsAbsentNotZero(t *testing.T) {
	el := hydrogen()
	el["boil"] = nil
	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Nil(t, els[0].BoilingPoint)
}

func TestDecodeNullSummaryIsAbsentNotFailure(t *testing.T) {
	el := hydrogen()
	el["summary"] = nil
	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Nil(t, els[0].Summary)
}

func TestDecodeNullSourceIsAbsentNotFailure(t *testing.T) {
	el := hydrogen()
	el["source"] = nil
	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Nil(t, els[0].Source)
}

func TestDecodeMissingRequiredKeyFailsWholeLoad(t *testing.T) {
	broken := helium()
	delete(broken, "phase")

	els, err := DecodeDataset(dataset(t, hydrogen(), broken))
	assert.Nil(t, els, "partial success is not supported")
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Index)
	assert.Equal(t, "phase", derr.Field)
	assert.Contains(t, derr.Reason, "missing")
}

func TestDecodeNumericStringRejected(t *testing.T) {
	el := hydrogen()
	el["atomic_mass"] = "1.008"

	_, err := DecodeDataset(dataset(t, el))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 0, derr.Index)
	assert.Equal(t, "atomic_mass", derr.Field)
}

func TestDecodeNullRequiredRejected(t *testing.T) {
	el := hydrogen()
	el["number"] = nil

	_, err := DecodeDataset(dataset(t, el))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "number", derr.Field)
}

func TestDecodeFractionalIntegerRejected(t *testing.T) {
	el := hydrogen()
	el["xpos"] = 1.5

	_, err := DecodeDataset(dataset(t, el))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "xpos", derr.Field)
}

func TestDecodeSequencesPreserveOrder(t *testing.T) {
	el := hydrogen()
	el["name"] = "Sodium"
	el["symbol"] = "Na"
	el["number"] = 11
	el["period"] = 3
	el["ypos"] = 3
	el["shells"] = []int{2, 8, 1}
	el["ionization_energies"] = []float64{495.8, 4562.0, 6910.3}

	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8, 1}, els[0].Shells)
	assert.Equal(t, []float64{495.8, 4562.0, 6910.3}, els[0].IonizationEnergies)
}

func TestDecodeEmptySequencesAllowed(t *testing.T) {
	el := hydrogen()
	el["ionization_energies"] = []float64{}

	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Empty(t, els[0].IonizationEnergies)
}

func TestDecodeMissingElementsKey(t *testing.T) {
	_, err := DecodeDataset([]byte(`{"atoms": []}`))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, -1, derr.Index)
	assert.Equal(t, "elements", derr.Field)
}

func TestDecodeElementsNotArray(t *testing.T) {
	_, err := DecodeDataset([]byte(`{"elements": {}}`))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "elements", derr.Field)
	assert.Contains(t, derr.Reason, "array")
}

func TestDecodeTopLevelNotObject(t *testing.T) {
	_, err := DecodeDataset([]byte(`[1, 2, 3]`))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, -1, derr.Index)
}

func TestDecodeNonPositivePositionRejected(t *testing.T) {
	el := hydrogen()
	el["xpos"] = 0

	_, err := DecodeDataset(dataset(t, el))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 0, derr.Index)
	assert.Equal(t, "xpos", derr.Field, "errors name the dataset key, not the Go field")
}

func TestDecodeAcceptsPositionsBeyondCurrentGrid(t *testing.T) {
	// Future dataset variants may claim coordinates outside today's
	// 18x10 layout; decoding must not reject them.
	el := hydrogen()
	el["xpos"] = 25
	el["ypos"] = 12

	els, err := DecodeDataset(dataset(t, el))
	require.NoError(t, err)
	assert.Equal(t, 25, els[0].XPos)
	assert.Equal(t, 12, els[0].YPos)
}

func TestDecodeErrorMessageNamesViolation(t *testing.T) {
	broken := hydrogen()
	delete(broken, "shells")

	_, err := DecodeDataset(dataset(t, broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shells")
	assert.Contains(t, err.Error(), "element 0")
}
