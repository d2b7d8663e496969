package services

import "testing"

func TestNutritionTableLookup(t *testing.T) {
	table := NewNutritionTable()

	q, ok := table.Lookup("chicken breast")
	if !ok {
		t.Fatal("expected chicken breast in the table")
	}
	if q.Calories != 165 || q.Protein != 31 || q.Carbs != 0 || q.Fat != 3.6 {
		t.Errorf("unexpected quantum: %+v", q)
	}

	if _, ok := table.Lookup("CHEESE"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := table.Lookup("  salmon  "); !ok {
		t.Error("lookup should trim whitespace")
	}
	if _, ok := table.Lookup("granite"); ok {
		t.Error("granite should not be food")
	}
}

func TestClassifySubstringResolution(t *testing.T) {
	c := NewFoodClassifier(NewNutritionTable())

	isFood, q := c.Classify("grilled chicken breast")
	if !isFood {
		t.Fatal("grilled chicken breast should classify as food")
	}
	if q.Calories != 165 || q.Protein != 31 || q.Carbs != 0 || q.Fat != 3.6 {
		t.Errorf("expected chicken breast quantum, got %+v", q)
	}
}

func TestClassifyNonFood(t *testing.T) {
	c := NewFoodClassifier(NewNutritionTable())

	for _, label := range []string{"blue sky", "table", "person", "plate"} {
		if isFood, _ := c.Classify(label); isFood {
			t.Errorf("%q should not classify as food", label)
		}
	}
}

func TestClassifyKeywordFallsBackToDefault(t *testing.T) {
	c := NewFoodClassifier(NewNutritionTable())

	// "dairy" is a category keyword but matches no table entry.
	isFood, q := c.Classify("dairy product")
	if !isFood {
		t.Fatal("dairy product should classify as food via keyword")
	}
	if q != DefaultQuantum {
		t.Errorf("expected default quantum, got %+v", q)
	}
}

func TestClassifyExactBeatsSubstring(t *testing.T) {
	c := NewFoodClassifier(NewNutritionTable())

	isFood, q := c.Classify("Rice")
	if !isFood {
		t.Fatal("rice should classify as food")
	}
	if q.Calories != 130 {
		t.Errorf("expected the exact rice entry, got %+v", q)
	}
}

func TestClassifyCommonFoodOutsideTable(t *testing.T) {
	c := NewFoodClassifier(NewNutritionTable())

	// "pizza" is a common food with no table entry: food, default quantum.
	isFood, q := c.Classify("pizza")
	if !isFood {
		t.Fatal("pizza should classify as food")
	}
	if q != DefaultQuantum {
		t.Errorf("expected default quantum for pizza, got %+v", q)
	}
}
