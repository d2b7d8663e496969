package services

import "strings"

// Category words that mark a vision label as food-related even when the
// label itself is not a known dish.
var foodKeywords = []string{
	"food", "meal", "dish", "breakfast", "lunch", "dinner", "snack",
	"fruit", "vegetable", "meat", "protein", "grain", "dairy",
}

// Common foods beyond the nutrition table, matched as substrings.
var commonFoods = []string{
	"apple", "banana", "orange", "chicken", "beef", "pork", "fish",
	"rice", "pasta", "bread", "cheese", "egg", "milk", "yogurt",
	"salad", "soup", "sandwich", "pizza", "burger", "taco", "sushi",
	"chocolate", "cake", "cookie", "ice cream", "coffee", "tea",
}

// FoodClassifier decides whether a free-text label denotes food and resolves
// it to the closest nutrition-table entry. The matching is a heuristic
// substring search, kept intentionally simple.
type FoodClassifier struct {
	table *NutritionTable
}

func NewFoodClassifier(table *NutritionTable) *FoodClassifier {
	return &FoodClassifier{table: table}
}

// Classify normalizes the label and reports whether it is food, together
// with its resolved nutrient quantum. Non-food labels carry a zero quantum
// and are expected to be discarded by the caller.
func (c *FoodClassifier) Classify(label string) (bool, NutrientQuantum) {
	name := strings.ToLower(strings.TrimSpace(label))
	if !c.isFood(name) {
		return false, NutrientQuantum{}
	}
	return true, c.resolve(name)
}

func (c *FoodClassifier) isFood(name string) bool {
	if _, ok := c.table.Lookup(name); ok {
		return true
	}
	for _, kw := range foodKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	for _, food := range commonFoods {
		if strings.Contains(name, food) {
			return true
		}
	}
	return false
}

// resolve picks a quantum in three tiers: exact table match, first table
// entry that is a substring of the label (or vice versa) in table order,
// then the default quantum.
func (c *FoodClassifier) resolve(name string) NutrientQuantum {
	if q, ok := c.table.Lookup(name); ok {
		return q
	}
	for _, e := range c.table.entries {
		if strings.Contains(name, e.name) || strings.Contains(e.name, name) {
			return e.quantum
		}
	}
	return DefaultQuantum
}
