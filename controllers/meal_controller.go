package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RicardoOchGeorges/Friskly-riktiga/services"
	"github.com/RicardoOchGeorges/Friskly-riktiga/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SaveMealRequest struct {
	Name     string                   `json:"name"`
	Items    []services.MealItemDraft `json:"items"`
	ImageURL string                   `json:"image_url"`
}

// POST /meals
func LogMeal(c *gin.Context) {
	var body SaveMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	mealSvc := services.NewMealService()
	meal, err := mealSvc.SaveMeal(userID, body.Name, body.Items, body.ImageURL)
	if err != nil {
		var pe *services.PersistenceError
		if errors.As(err, &pe) && pe.Partial {
			// The header committed; warn instead of pretending a rollback.
			c.JSON(http.StatusCreated, gin.H{
				"meal":    meal,
				"warning": "Meal saved but some items may not have been recorded.",
			})
			return
		}
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals
func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := services.NewMealService().ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/history
func MealHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.NewMealService().LoadMealHistory(userID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /meals/:id
func GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := services.NewMealService().GetMeal(userID, uint(mealID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := services.NewMealService().DeleteMeal(userID, uint(mealID)); err != nil {
		var pe *services.PersistenceError
		if errors.As(err, &pe) && pe.Stage == "lookup" {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// POST /meals/photo  { "image_base64": "data:…" }
func UploadMealPhoto(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "meal-photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
