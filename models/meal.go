package models

import (
    "time"

    "gorm.io/gorm"
)

// One logged Meal ("Lunch", "Post-workout snack", …)
type Meal struct {
    gorm.Model
    UserID uint `gorm:"index;not null" json:"user_id"` // FK → users.id

    Name     string    `gorm:"not null" json:"name"`
    MealDate time.Time `gorm:"type:date;index" json:"meal_date"` // calendar day of the meal
    MealTime string    `json:"meal_time"`                        // wall clock at save, "HH:MM:SS"

    // Totals are a snapshot of the items at the moment of save, not
    // independently editable.
    TotalCalories int `json:"total_calories"`
    TotalProtein  int `json:"total_protein"`
    TotalCarbs    int `json:"total_carbs"`
    TotalFat      int `json:"total_fat"`

    ImageURL string `json:"image_url,omitempty"`

    Items []MealItem `json:"items"`
}

// Each MealItem is one named food line inside a meal
type MealItem struct {
    gorm.Model
    MealID uint `gorm:"index;not null" json:"meal_id"`

    Name     string `gorm:"not null" json:"name"`
    Calories int    `json:"calories"`
    Protein  int    `json:"protein"`
    Carbs    int    `json:"carbs"`
    Fat      int    `json:"fat"`
}
