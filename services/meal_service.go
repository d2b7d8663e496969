package services

import (
	"log/slog"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/RicardoOchGeorges/Friskly-riktiga/config"
	"github.com/RicardoOchGeorges/Friskly-riktiga/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService() *MealService {
	return &MealService{db: config.DB}
}

// NewMealServiceWithDB builds the service against a specific connection
// instead of the shared one.
func NewMealServiceWithDB(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// DaySection is one date group of the meal history, labeled for display.
type DaySection struct {
	Date  string        `json:"date"`
	Meals []models.Meal `json:"meals"`
}

// SaveMeal validates the composition buffer, snapshots the totals, and writes
// the meal header followed by one row per named item. The two writes are not
// atomic: a header failure aborts before any item is written, while an item
// failure leaves the already-committed header in place and reports a partial
// save so the caller can warn the user.
func (s *MealService) SaveMeal(userID uint, mealName string, items []MealItemDraft, imageURL string) (*models.Meal, error) {
	if err := ValidateMeal(mealName, items); err != nil {
		return nil, err
	}

	named := NamedItems(items)
	totals := ComputeTotals(named)
	now := time.Now()

	meal := &models.Meal{
		UserID:        userID,
		Name:          mealName,
		MealDate:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		MealTime:      now.Format("15:04:05"),
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		ImageURL:      imageURL,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, &PersistenceError{Stage: "header", Err: err}
	}

	rows := make([]models.MealItem, 0, len(named))
	for _, it := range named {
		rows = append(rows, models.MealItem{
			MealID:   meal.ID,
			Name:     it.Name,
			Calories: parseAmount(it.Calories),
			Protein:  parseAmount(it.Protein),
			Carbs:    parseAmount(it.Carbs),
			Fat:      parseAmount(it.Fat),
		})
	}
	if err := s.db.Create(&rows).Error; err != nil {
		slog.Warn("meal saved without some items", "meal_id", meal.ID, "error", err)
		return meal, &PersistenceError{Stage: "items", Partial: true, Err: err}
	}
	meal.Items = rows
	return meal, nil
}

// ListMeals returns the user's meals newest-first, items included.
func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("meal_date DESC, meal_time DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

// LoadMealHistory rebuilds the grouped-by-day projection from stored rows.
func (s *MealService) LoadMealHistory(userID uint) ([]DaySection, error) {
	meals, err := s.ListMeals(userID)
	if err != nil {
		return nil, &PersistenceError{Stage: "history", Err: err}
	}
	return GroupMealsByDate(meals, time.Now()), nil
}

// GroupMealsByDate groups meals by calendar date, newest group first
// regardless of input order, labeling groups "Today", "Yesterday", or a
// long-form date.
func GroupMealsByDate(meals []models.Meal, now time.Time) []DaySection {
	byDate := make(map[string][]models.Meal)
	for _, m := range meals {
		key := m.MealDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], m)
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	sections := make([]DaySection, 0, len(keys))
	for _, k := range keys {
		group := byDate[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].MealTime > group[j].MealTime
		})

		label := ""
		switch k {
		case today:
			label = "Today"
		case yesterday:
			label = "Yesterday"
		default:
			d, _ := time.Parse("2006-01-02", k)
			label = d.Format("January 2, 2006")
		}
		sections = append(sections, DaySection{Date: label, Meals: group})
	}
	return sections
}

// DeleteMeal removes a meal and its line items, items first so a failure can
// never orphan them. An item-delete failure aborts with the header intact.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return &PersistenceError{Stage: "lookup", Err: err}
	}

	if err := s.db.
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealItem{}).Error; err != nil {
		return &PersistenceError{Stage: "items", Err: err}
	}
	if err := s.db.Delete(&meal).Error; err != nil {
		slog.Warn("meal items deleted but header remains", "meal_id", meal.ID, "error", err)
		return &PersistenceError{Stage: "header", Partial: true, Err: err}
	}
	return nil
}
