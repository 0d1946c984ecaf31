package routes

import (
	"mutual_cartera/internal/adapter/http/handlers"
	"mutual_cartera/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathImports   = "/imports"
	PathDashboard = "/dashboard"
	PathClients   = "/clients"
)

func addPortfolioRoutes(
	rg *gin.RouterGroup,
	auth *middleware.Authenticator,
	importHandler *handlers.ImportHandler,
	dashboardHandler *handlers.DashboardHandler,
	clientHandler *handlers.ClientHandler,
) {
	imports := rg.Group(PathImports, auth.RequireRoles(middleware.ImportRoles...))
	{
		imports.POST("", importHandler.ImportSpreadsheet)
	}

	dashboard := rg.Group(PathDashboard, auth.RequireRoles())
	{
		dashboard.GET("/period", dashboardHandler.GetPeriodMetrics)
		dashboard.GET("/delinquency", dashboardHandler.GetDelinquency)
		dashboard.GET("/liquidity", dashboardHandler.GetLiquidity)
		dashboard.POST("/clients/refresh", dashboardHandler.RefreshClients)
	}

	clients := rg.Group(PathClients, auth.RequireRoles())
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:cuit", clientHandler.GetClient)
	}
}
