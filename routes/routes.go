package routes

import (
	"os"
	"strings"

	"studiopro-backend/config"
	"studiopro-backend/controllers"
	"studiopro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

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
		api.GET("/dashboard", controllers.GetDashboardOverview)

		manageClients := utils.RequireCapability(utils.CapManageClients)

		// Client routes
		clients := api.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.POST("", manageClients, controllers.CreateClient)
			clients.PUT("/:id", manageClients, controllers.UpdateClient)
			clients.DELETE("/:id", manageClients, controllers.DeleteClient)

			// Billing entities under a client
			clients.GET("/:id/entities", controllers.GetEntities)
			clients.GET("/:id/entities/:entityId", controllers.GetEntity)
			clients.POST("/:id/entities", manageClients, controllers.CreateEntity)
			clients.PUT("/:id/entities/:entityId", manageClients, controllers.UpdateEntity)
			clients.DELETE("/:id/entities/:entityId", manageClients, controllers.DeleteEntity)

			// Sites under a billing entity
			clients.GET("/:id/entities/:entityId/sites", controllers.GetSites)
			clients.GET("/:id/entities/:entityId/sites/:siteId", controllers.GetSite)
			clients.POST("/:id/entities/:entityId/sites", manageClients, controllers.CreateSite)
			clients.PUT("/:id/entities/:entityId/sites/:siteId", manageClients, controllers.UpdateSite)
			clients.DELETE("/:id/entities/:entityId/sites/:siteId", manageClients, controllers.DeleteSite)

			// Points of contact under a site
			clients.GET("/:id/entities/:entityId/sites/:siteId/pocs", controllers.GetPOCs)
			clients.GET("/:id/entities/:entityId/sites/:siteId/pocs/:pocId", controllers.GetPOC)
			clients.POST("/:id/entities/:entityId/sites/:siteId/pocs", manageClients, controllers.CreatePOC)
			clients.PUT("/:id/entities/:entityId/sites/:siteId/pocs/:pocId", manageClients, controllers.UpdatePOC)
			clients.DELETE("/:id/entities/:entityId/sites/:siteId/pocs/:pocId", manageClients, controllers.DeletePOC)

			// Shoot scheduling locations under a client
			clients.GET("/:id/locations", controllers.GetLocations)
			clients.GET("/:id/locations/:locationId", controllers.GetLocation)
			clients.POST("/:id/locations", manageClients, controllers.CreateLocation)
			clients.PUT("/:id/locations/:locationId", manageClients, controllers.UpdateLocation)
			clients.DELETE("/:id/locations/:locationId", manageClients, controllers.DeleteLocation)
		}

		// Shoot type catalog
		manageCatalog := utils.RequireCapability(utils.CapManageCatalog)
		shootTypes := api.Group("/shoot-types")
		{
			shootTypes.GET("", controllers.GetShootTypes)
			shootTypes.GET("/:id", controllers.GetShootType)
			shootTypes.POST("", manageCatalog, controllers.CreateShootType)
			shootTypes.PUT("/:id", manageCatalog, controllers.UpdateShootType)
			shootTypes.DELETE("/:id", manageCatalog, controllers.DeleteShootType)
		}

		// Shoot routes
		manageShoots := utils.RequireCapability(utils.CapManageShoots)
		shoots := api.Group("/shoots")
		{
			shoots.GET("", controllers.GetShoots)
			shoots.GET("/:id", controllers.GetShoot)
			shoots.POST("", manageShoots, controllers.CreateShoot)
			shoots.PUT("/:id", manageShoots, controllers.UpdateShoot)
			shoots.DELETE("/:id", manageShoots, controllers.DeleteShoot)
		}

		// Edit routes
		manageEdits := utils.RequireCapability(utils.CapManageEdits)
		edits := api.Group("/edits")
		{
			edits.GET("", controllers.GetEdits)
			edits.GET("/:id", controllers.GetEdit)
			edits.POST("", manageEdits, controllers.CreateEdit)
			edits.PUT("/:id", manageEdits, controllers.UpdateEdit)
			edits.DELETE("/:id", manageEdits, controllers.DeleteEdit)
		}

		// Coupon routes
		manageCoupons := utils.RequireCapability(utils.CapManageCoupons)
		coupons := api.Group("/coupons")
		{
			coupons.GET("", controllers.GetCoupons)
			coupons.GET("/check", controllers.CheckCoupon)
			coupons.GET("/:id", controllers.GetCoupon)
			coupons.POST("", manageCoupons, controllers.CreateCoupon)
			coupons.PUT("/:id", manageCoupons, controllers.UpdateCoupon)
			coupons.DELETE("/:id", manageCoupons, controllers.DeleteCoupon)
			coupons.POST("/:id/redeem", manageCoupons, controllers.RedeemCoupon)
		}

		// Team routes
		manageTeam := utils.RequireCapability(utils.CapManageTeam)
		team := api.Group("/team")
		{
			team.GET("", controllers.GetTeamMembers)
			team.GET("/:id", controllers.GetTeamMember)
			team.POST("", manageTeam, controllers.CreateTeamMember)
			team.PUT("/:id", manageTeam, controllers.UpdateTeamMember)
			team.DELETE("/:id", manageTeam, controllers.DeleteTeamMember)
		}
	}

	return r
}

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}
