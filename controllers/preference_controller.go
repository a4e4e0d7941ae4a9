package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

func GetFoodPreferences(c *gin.Context) {
	userID := c.GetString("userID")

	categories, err := services.LoadPreferences(c.Request.Context(), userID)
	if err != nil {
		// The merged catalog is still usable, so reply 200 with a warning
		// instead of failing the whole page.
		c.JSON(http.StatusOK, gin.H{
			"categories": categories,
			"warning":    "Préférences indisponibles, catalogue par défaut affiché",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func TogglePreference(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		CategoryID string `json:"category_id" binding:"required"`
		ItemID     string `json:"item_id" binding:"required"`
		Kind       string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := services.TogglePreference(c.Request.Context(), userID, input.CategoryID, input.ItemID, models.Preference(input.Kind))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPreferenceKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFoodItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
