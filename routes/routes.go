package routes

import (
	"movesched-backend/config"
	"movesched-backend/controllers"
	"movesched-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Health routes (public, for load balancers and operators)
	health := r.Group("/health")
	{
		health.GET("", controllers.BasicHealthCheck)
		health.GET("/live", controllers.LivenessCheck)
		health.GET("/ready", controllers.ReadinessCheck)
		health.GET("/detailed", controllers.DetailedHealthCheck)
		health.GET("/database", controllers.DatabaseHealthCheck)
		health.GET("/metrics", controllers.SystemMetrics)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Crew member routes
		crewMembers := api.Group("/crew_members")
		{
			crewMembers.POST("", controllers.CreateCrewMember)
			crewMembers.GET("", controllers.GetCrewMembers)
			crewMembers.GET("/:id", controllers.GetCrewMember)
			crewMembers.PUT("/:id", controllers.UpdateCrewMember)
			crewMembers.DELETE("/:id", controllers.DeleteCrewMember)
		}

		// Crew routes, including membership management
		crews := api.Group("/crews")
		{
			crews.POST("", controllers.CreateCrew)
			crews.GET("", controllers.GetCrews)
			crews.GET("/:id", controllers.GetCrew)
			crews.PUT("/:id", controllers.UpdateCrew)
			crews.DELETE("/:id", controllers.DeleteCrew)
			crews.POST("/:id/members", controllers.AddMemberToCrew)
			crews.DELETE("/:id/members/:member_id", controllers.RemoveMemberFromCrew)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.PUT("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}
	}

	return r
}
