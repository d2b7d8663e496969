package routes

import (
    "github.com/RicardoOchGeorges/Friskly-riktiga/controllers"
    "github.com/RicardoOchGeorges/Friskly-riktiga/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected food recognition routes
    food := r.Group("/food")
    food.Use(middlewares.AuthMiddleware())
    {
        food.POST("/analyze", controllers.AnalyzeFood)
    }

    // Protected meal routes
    meals := r.Group("/meals")
    meals.Use(middlewares.AuthMiddleware())
    {
        meals.POST("", controllers.LogMeal)
        meals.GET("", controllers.ListMeals)
        meals.GET("/history", controllers.MealHistory)
        meals.GET("/:id", controllers.GetMeal)
        meals.DELETE("/:id", controllers.DeleteMeal)
        meals.POST("/photo", controllers.UploadMealPhoto)
    }

    // Protected coach routes
    coach := r.Group("/coach")
    coach.Use(middlewares.AuthMiddleware())
    {
        coach.POST("/advice", controllers.GetFoodAdvice)
        coach.POST("/chat", controllers.CoachChat)
        coach.GET("/advice/stream", controllers.FoodAdviceStreamWS)
    }

    return r
}
