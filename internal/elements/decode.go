package elements

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator for decoded elements.
var validate = validator.New()

// DecodeError reports the first expectation the dataset violated.
// Index is the offending element's position in the "elements" array,
// or -1 for document-level failures.
type DecodeError struct {
	Index  int
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index < 0 && e.Field == "":
		return fmt.Sprintf("dataset: %s", e.Reason)
	case e.Index < 0:
		return fmt.Sprintf("dataset field %q: %s", e.Field, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("element %d: %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("element %d, field %q: %s", e.Index, e.Field, e.Reason)
	}
}

// DecodeDataset decodes a periodic-table JSON document into typed
// elements. The document must be an object with an "elements" array.
// The first schema violation aborts the whole decode; partial results
// are never returned.
func DecodeDataset(data []byte) ([]ChemicalElement, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Index: -1, Reason: "not a JSON object"}
	}

	rawList, ok := doc["elements"]
	if !ok {
		return nil, &DecodeError{Index: -1, Field: "elements", Reason: "missing required field"}
	}
	var entries []json.RawMessage
	if isNull(rawList) || json.Unmarshal(rawList, &entries) != nil {
		return nil, &DecodeError{Index: -1, Field: "elements", Reason: "expected an array"}
	}

	out := make([]ChemicalElement, 0, len(entries))
	for i, entry := range entries {
		el, err := decodeElement(i, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

// decodeElement decodes one array entry using the fixed snake_case →
// field mapping. Every mapped key must be present; the nullable ones
// may hold JSON null, which decodes to an absent (nil) property.
func decodeElement(index int, entry json.RawMessage) (ChemicalElement, error) {
	var obj map[string]json.RawMessage
	if isNull(entry) || json.Unmarshal(entry, &obj) != nil {
		return ChemicalElement{}, &DecodeError{Index: index, Reason: "expected an object"}
	}

	r := fieldReader{index: index, obj: obj}
	var el ChemicalElement
	var err error

	if el.Name, err = r.str("name"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Symbol, err = r.str("symbol"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Number, err = r.integer("number"); err != nil {
		return ChemicalElement{}, err
	}
	if el.AtomicMass, err = r.float("atomic_mass"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Category, err = r.str("category"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Phase, err = r.str("phase"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Period, err = r.integer("period"); err != nil {
		return ChemicalElement{}, err
	}
	if el.XPos, err = r.integer("xpos"); err != nil {
		return ChemicalElement{}, err
	}
	if el.YPos, err = r.integer("ypos"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Shells, err = r.ints("shells"); err != nil {
		return ChemicalElement{}, err
	}
	if el.IonizationEnergies, err = r.floats("ionization_energies"); err != nil {
		return ChemicalElement{}, err
	}
	if el.ElectronConfiguration, err = r.str("electron_configuration"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Summary, err = r.optStr("summary"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Source, err = r.optStr("source"); err != nil {
		return ChemicalElement{}, err
	}
	if el.BoilingPoint, err = r.optFloat("boil"); err != nil {
		return ChemicalElement{}, err
	}
	if el.MeltingPoint, err = r.optFloat("melt"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Density, err = r.optFloat("density"); err != nil {
		return ChemicalElement{}, err
	}
	if el.MolarHeat, err = r.optFloat("molar_heat"); err != nil {
		return ChemicalElement{}, err
	}
	if el.ElectronAffinity, err = r.optFloat("electron_affinity"); err != nil {
		return ChemicalElement{}, err
	}
	if el.ElectronegativityPauling, err = r.optFloat("electronegativity_pauling"); err != nil {
		return ChemicalElement{}, err
	}
	if el.NamedBy, err = r.optStr("named_by"); err != nil {
		return ChemicalElement{}, err
	}
	if el.DiscoveredBy, err = r.optStr("discovered_by"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Appearance, err = r.optStr("appearance"); err != nil {
		return ChemicalElement{}, err
	}
	if el.Color, err = r.optStr("color"); err != nil {
		return ChemicalElement{}, err
	}
	if el.SpectralImage, err = r.optStr("spectral_img"); err != nil {
		return ChemicalElement{}, err
	}

	if err := validate.Struct(el); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return ChemicalElement{}, &DecodeError{
				Index:  index,
				Field:  jsonKey(verrs[0].Field()),
				Reason: fmt.Sprintf("value fails %q constraint", verrs[0].Tag()),
			}
		}
		return ChemicalElement{}, &DecodeError{Index: index, Reason: err.Error()}
	}

	return el, nil
}

// jsonKeys maps validated Go field names back to their dataset keys so
// DecodeError.Field always names what the document actually says.
var jsonKeys = map[string]string{
	"Name":       "name",
	"Symbol":     "symbol",
	"Number":     "number",
	"AtomicMass": "atomic_mass",
	"Category":   "category",
	"Phase":      "phase",
	"Period":     "period",
	"XPos":       "xpos",
	"YPos":       "ypos",
}

func jsonKey(field string) string {
	if key, ok := jsonKeys[field]; ok {
		return key
	}
	return field
}

// fieldReader reads typed values out of one element object, turning
// every miss into a positioned *DecodeError. Methods return plain
// error; a concrete *DecodeError return type would never compare equal
// to nil once assigned into an error variable.
type fieldReader struct {
	index int
	obj   map[string]json.RawMessage
}

func (r fieldReader) raw(name string) (json.RawMessage, error) {
	raw, ok := r.obj[name]
	if !ok {
		return nil, &DecodeError{Index: r.index, Field: name, Reason: "missing required field"}
	}
	return raw, nil
}

func (r fieldReader) str(name string) (string, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return "", derr
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", &DecodeError{Index: r.index, Field: name, Reason: "expected a string"}
	}
	return s, nil
}

func (r fieldReader) float(name string) (float64, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return 0, derr
	}
	var f float64
	if isNull(raw) || json.Unmarshal(raw, &f) != nil {
		return 0, &DecodeError{Index: r.index, Field: name, Reason: "expected a number"}
	}
	return f, nil
}

func (r fieldReader) integer(name string) (int, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return 0, derr
	}
	var n int
	if isNull(raw) || json.Unmarshal(raw, &n) != nil {
		return 0, &DecodeError{Index: r.index, Field: name, Reason: "expected an integer"}
	}
	return n, nil
}

func (r fieldReader) optFloat(name string) (*float64, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return nil, derr
	}
	if isNull(raw) {
		return nil, nil
	}
	var f float64
	if json.Unmarshal(raw, &f) != nil {
		return nil, &DecodeError{Index: r.index, Field: name, Reason: "expected a number or null"}
	}
	return &f, nil
}

func (r fieldReader) optStr(name string) (*string, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return nil, derr
	}
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil, &DecodeError{Index: r.index, Field: name, Reason: "expected a string or null"}
	}
	return &s, nil
}

func (r fieldReader) ints(name string) ([]int, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return nil, derr
	}
	var ns []int
	if isNull(raw) || json.Unmarshal(raw, &ns) != nil {
		return nil, &DecodeError{Index: r.index, Field: name, Reason: "expected an array of integers"}
	}
	return ns, nil
}

func (r fieldReader) floats(name string) ([]float64, error) {
	raw, derr := r.raw(name)
	if derr != nil {
		return nil, derr
	}
	var fs []float64
	if isNull(raw) || json.Unmarshal(raw, &fs) != nil {
		return nil, &DecodeError{Index: r.index, Field: name, Reason: "expected an array of numbers"}
	}
	return fs, nil
}

// isNull reports whether a raw JSON value is the literal null.
// json.Unmarshal treats null as a no-op on most targets, so the check
// has to happen before unmarshalling.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
