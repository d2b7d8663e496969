package controllers

import (
	"errors"
	"net/http"

	"github.com/RicardoOchGeorges/Friskly-riktiga/services"

	"github.com/gin-gonic/gin"
)

// statusForError maps the service error taxonomy to HTTP statuses.
func statusForError(err error) int {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var se *services.ServiceError
	if errors.As(err, &se) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// POST /food/analyze  { "image_base64": "data:…" }
func AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	foodSvc := services.NewFoodService(
		services.NewVisionService(),
		services.NewFoodClassifier(services.NewNutritionTable()),
	)
	result, err := foodSvc.Analyze(req.ImageBase64)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
