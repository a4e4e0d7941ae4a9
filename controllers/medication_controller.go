package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
)

type MedicationController struct {
	meds *services.MedicationService
}

func NewMedicationController(meds *services.MedicationService) *MedicationController {
	return &MedicationController{meds: meds}
}

func (mc *MedicationController) Add(c *gin.Context) {
	userID := c.GetString("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Medication name is required"})
		return
	}

	med, err := mc.meds.Add(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"medication": med})
}

func (mc *MedicationController) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := mc.meds.Update(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medication": med})
}

func (mc *MedicationController) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := mc.meds.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted", "deleted_id": c.Param("id")})
}

func (mc *MedicationController) List(c *gin.Context) {
	userID := c.GetString("userID")

	meds, err := mc.meds.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medications": meds})
}
