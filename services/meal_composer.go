package services

import (
	"strconv"
	"strings"
)

// MealItemDraft is one row of the add-meal composition buffer. Numeric
// fields stay strings until save so half-typed values never block editing.
type MealItemDraft struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// MealTotals is the per-meal nutrient sum over the draft items.
type MealTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// BlankItem returns an empty draft row with the given id.
func BlankItem(id int) MealItemDraft {
	return MealItemDraft{ID: id}
}

// AddBlankItem appends a fresh row whose id is one greater than the current
// maximum, or 1 on an empty list.
func AddBlankItem(items []MealItemDraft) []MealItemDraft {
	newID := 1
	for _, it := range items {
		if it.ID >= newID {
			newID = it.ID + 1
		}
	}
	return append(items, BlankItem(newID))
}

// UpdateItem replaces one field of the row matching id. Unknown ids and
// unknown fields are no-ops.
func UpdateItem(items []MealItemDraft, id int, field, value string) []MealItemDraft {
	out := make([]MealItemDraft, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case "name":
			out[i].Name = value
		case "calories":
			out[i].Calories = value
		case "protein":
			out[i].Protein = value
		case "carbs":
			out[i].Carbs = value
		case "fat":
			out[i].Fat = value
		}
	}
	return out
}

// RemoveItem drops the row matching id. The buffer never goes empty: removing
// the last row leaves a single blank one for the composition UI.
func RemoveItem(items []MealItemDraft, id int) []MealItemDraft {
	out := make([]MealItemDraft, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		out = append(out, BlankItem(1))
	}
	return out
}

// ComputeTotals sums each numeric field across the draft rows. Empty or
// unparsable values count as 0; fractional values truncate.
func ComputeTotals(items []MealItemDraft) MealTotals {
	var t MealTotals
	for _, it := range items {
		t.Calories += parseAmount(it.Calories)
		t.Protein += parseAmount(it.Protein)
		t.Carbs += parseAmount(it.Carbs)
		t.Fat += parseAmount(it.Fat)
	}
	return t
}

func parseAmount(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// NamedItems filters the buffer down to rows with a non-empty trimmed name,
// the only rows that count for validation and persistence.
func NamedItems(items []MealItemDraft) []MealItemDraft {
	out := make([]MealItemDraft, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) != "" {
			out = append(out, it)
		}
	}
	return out
}

// ValidateMeal checks the local invariants before a save: a meal name and at
// least one named item.
func ValidateMeal(mealName string, items []MealItemDraft) error {
	if mealName == "" {
		return &ValidationError{Reason: "please enter a meal name"}
	}
	if len(NamedItems(items)) == 0 {
		return &ValidationError{Reason: "please add at least one food item"}
	}
	return nil
}
