package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

type MealPlanController struct {
	plans     *services.MealPlanService
	generator services.PlanGenerator
}

func NewMealPlanController(plans *services.MealPlanService, generator services.PlanGenerator) *MealPlanController {
	return &MealPlanController{plans: plans, generator: generator}
}

func (mc *MealPlanController) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		Config models.PlanConfiguration `json:"config" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Config.DurationDays > services.MaxPlanDays {
		input.Config.DurationDays = services.MaxPlanDays
	}

	categories, err := services.LoadPreferences(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food preferences"})
		return
	}

	genInput, err := services.AssembleGeneratorInput(input.Config, categories, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.generator.Generate(c.Request.Context(), genInput)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Meal plan generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "plan_name": genInput.PlanName})
}

func (mc *MealPlanController) Save(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		Name string                   `json:"name" binding:"required"`
		Plan models.GeneratedMealPlan `json:"plan" binding:"required"`
		ID   string                   `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := mc.plans.Save(c.Request.Context(), userID, input.Plan, input.Name, input.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": stored})
}

func (mc *MealPlanController) List(c *gin.Context) {
	userID := c.GetString("userID")

	plans, err := mc.plans.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (mc *MealPlanController) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := mc.plans.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted", "deleted_id": c.Param("id")})
}
