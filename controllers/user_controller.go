package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
	"backend/utils"
)

func GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := services.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      user,
		"bmi_category": utils.BMICategory(user.BMI),
	})
}

// DeleteProfile disables the account rather than removing the document,
// so the user's saved plans stay recoverable by support.
func DeleteProfile(c *gin.Context) {
	userID := c.GetString("userID")

	if err := services.DeleteUser(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account disabled"})
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      user,
		"bmi_category": utils.BMICategory(user.BMI),
	})
}
