package services

import "strings"

// NutrientQuantum holds the nutrients of one reference serving of a food.
// Values are never mutated after table construction.
type NutrientQuantum struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultQuantum is used when a label is recognized as food but matches
// nothing in the table.
var DefaultQuantum = NutrientQuantum{Calories: 100, Protein: 5, Carbs: 15, Fat: 3}

type nutritionEntry struct {
	name    string
	quantum NutrientQuantum
}

// NutritionTable maps canonical food names to nutrient quanta. Entries keep
// their declaration order so substring resolution is deterministic.
type NutritionTable struct {
	entries []nutritionEntry
	index   map[string]NutrientQuantum
}

var defaultEntries = []nutritionEntry{
	{"apple", NutrientQuantum{95, 0.5, 25, 0.3}},
	{"banana", NutrientQuantum{105, 1.3, 27, 0.4}},
	{"chicken breast", NutrientQuantum{165, 31, 0, 3.6}},
	{"rice", NutrientQuantum{130, 2.7, 28, 0.3}},
	{"broccoli", NutrientQuantum{55, 3.7, 11, 0.6}},
	{"salmon", NutrientQuantum{206, 22, 0, 13}},
	{"egg", NutrientQuantum{78, 6, 0.6, 5}},
	{"bread", NutrientQuantum{79, 3, 15, 1}},
	{"pasta", NutrientQuantum{131, 5, 25, 1.1}},
	{"steak", NutrientQuantum{271, 26, 0, 19}},
	{"potato", NutrientQuantum{161, 4.3, 37, 0.2}},
	{"carrot", NutrientQuantum{41, 0.9, 10, 0.2}},
	{"avocado", NutrientQuantum{240, 3, 12, 22}},
	{"cheese", NutrientQuantum{113, 7, 0.4, 9}},
	{"yogurt", NutrientQuantum{59, 3.5, 5, 3.3}},
}

// NewNutritionTable builds the built-in per-serving nutrition table. A richer
// database can be swapped in later by constructing the table from other
// entries without touching the classifier.
func NewNutritionTable() *NutritionTable {
	t := &NutritionTable{
		entries: defaultEntries,
		index:   make(map[string]NutrientQuantum, len(defaultEntries)),
	}
	for _, e := range t.entries {
		t.index[e.name] = e.quantum
	}
	return t
}

// Lookup resolves a food name case-insensitively against the canonical set.
func (t *NutritionTable) Lookup(name string) (NutrientQuantum, bool) {
	q, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	return q, ok
}
