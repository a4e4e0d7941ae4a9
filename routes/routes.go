package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(generator services.PlanGenerator, rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	mealPlans := controllers.NewMealPlanController(services.NewMealPlanService(config.Store), generator)
	medications := controllers.NewMedicationController(services.NewMedicationService(config.Store))
	realtime := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteProfile)
	}

	// Food catalog with the user's preferences overlaid
	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/preferences", controllers.GetFoodPreferences)
		foods.POST("/preferences/toggle", controllers.TogglePreference)
	}

	// Plan form settings and their saved snapshots
	plan := r.Group("/plan")
	plan.Use(middlewares.AuthMiddleware())
	{
		plan.GET("/config", controllers.GetPlanConfig)
		plan.POST("/config/save", controllers.SaveFormSnapshot)
		plan.GET("/config/history", controllers.ListFormSnapshots)
		plan.GET("/config/history/:id", controllers.GetFormSnapshot)
		plan.DELETE("/config/history/:id", controllers.DeleteFormSnapshot)
	}

	// Generated and saved meal plans
	plans := r.Group("/plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.POST("/generate", mealPlans.Generate)
		plans.POST("", mealPlans.Save)
		plans.GET("", mealPlans.List)
		plans.DELETE("/:id", mealPlans.Delete)
	}

	meds := r.Group("/medications")
	meds.Use(middlewares.AuthMiddleware())
	{
		meds.POST("", medications.Add)
		meds.PUT("/:id", medications.Update)
		meds.DELETE("/:id", medications.Delete)
		meds.GET("", medications.List)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtime.AlertsWS)
	}

	return r
}
