// Package importer turns heterogeneous tabular catalog files into the
// canonical entity collections. It is deliberately forgiving: rows that
// cannot be salvaged are dropped and counted, never raised.
package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RawRow is one decoded tabular record: arbitrary string keys, string
// values. Rows are only ever consumed through the alias table below,
// never positionally.
type RawRow map[string]string

// stripDiacritics decomposes accented characters and removes the
// combining marks ("Obrigatória" -> "Obrigatoria").
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeValue strips BOM artifacts and surrounding whitespace.
// Total and idempotent: empty or absent input yields "".
func NormalizeValue(s string) string {
	s = strings.ReplaceAll(s, "\uFEFF", "")
	return strings.TrimSpace(s)
}

// NormalizeHeader canonicalizes a field name: BOM/trim, diacritics
// removed, internal whitespace removed, upper-cased. Values never go
// through this; only field names are case-folded.
func NormalizeHeader(s string) string {
	s = Fold(NormalizeValue(s))
	s = strings.Join(strings.Fields(s), "")
	return strings.ToUpper(s)
}

// Fold removes diacritics from s, leaving case and spacing untouched.
func Fold(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		return s
	}
	return out
}

// foldUpper is the comparison form for keyword fields (requirement
// class, shift): diacritic-stripped and upper-cased.
func foldUpper(s string) string {
	return strings.ToUpper(Fold(s))
}

// Canonical field keys resolved by the alias table.
const (
	fieldProgram     = "CURSO"
	fieldSemester    = "SEMESTRE"
	fieldComponent   = "COMPONENTECURRICULAR"
	fieldHours       = "CH"
	fieldRequirement = "NATUREZA"
	fieldCode        = "CODIGO"
	fieldInstructors = "DOCENTES"
)

// aliases maps each canonical key to its accepted header spellings,
// in resolution order: first non-empty match wins.
var aliases = map[string][]string{
	fieldProgram:     {"CURSO"},
	fieldSemester:    {"SEMESTRE"},
	fieldComponent:   {"COMPONENTECURRICULAR", "COMPONENTE_CURRICULAR", "DISCIPLINA"},
	fieldHours:       {"CH", "CARGAHORARIA"},
	fieldRequirement: {"NATUREZA"},
	fieldCode:        {"CODIGO", "COD"},
	fieldInstructors: {"DOCENTES", "PROFESSOR"},
}

// fieldBag is a row after header canonicalization, consumed only
// through resolve.
type fieldBag map[string]string

// canonicalize rebuilds a raw row keyed by normalized headers with
// trimmed values.
func canonicalize(row RawRow) fieldBag {
	bag := make(fieldBag, len(row))
	for k, v := range row {
		bag[NormalizeHeader(k)] = NormalizeValue(v)
	}
	return bag
}

// resolve returns the value for a canonical field, walking its alias
// list first-match-wins, or def when every alias is empty or absent.
func (b fieldBag) resolve(field, def string) string {
	for _, alias := range aliases[field] {
		if v := b[alias]; v != "" {
			return v
		}
	}
	return def
}
