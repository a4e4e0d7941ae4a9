package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

func GetPlanConfig(c *gin.Context) {
	userID := c.GetString("userID")

	settings, err := services.LoadConfiguration(c.Request.Context(), userID)
	if err != nil {
		// Defaults are still returned so the form can render; the client
		// shows the warning instead of an error page.
		c.JSON(http.StatusOK, gin.H{
			"settings": settings,
			"warning":  "Paramètres indisponibles, valeurs par défaut chargées",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func SaveFormSnapshot(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		Name   string                   `json:"name" binding:"required"`
		Config models.PlanConfiguration `json:"config" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Config.DurationDays > services.MaxPlanDays {
		input.Config.DurationDays = services.MaxPlanDays
	}

	snapshot, err := services.SaveSnapshot(c.Request.Context(), userID, input.Name, input.Config)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

func ListFormSnapshots(c *gin.Context) {
	userID := c.GetString("userID")

	snapshots, err := services.ListSnapshots(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

func GetFormSnapshot(c *gin.Context) {
	userID := c.GetString("userID")

	snapshot, err := services.LoadSnapshot(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

func DeleteFormSnapshot(c *gin.Context) {
	userID := c.GetString("userID")

	if err := services.DeleteSnapshot(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot deleted", "deleted_id": c.Param("id")})
}
