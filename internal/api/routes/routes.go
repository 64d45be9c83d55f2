// server/internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pharma-factory-api-server/config"
	"pharma-factory-api-server/internal/api/handlers"
	"pharma-factory-api-server/internal/api/middleware"
	"pharma-factory-api-server/internal/auth"
	"pharma-factory-api-server/internal/mailer"
	"pharma-factory-api-server/internal/repository"
	"pharma-factory-api-server/internal/s3"
	"pharma-factory-api-server/internal/socket"
)

// SetupRouter wires the handlers to their dependencies and builds the
// route tree.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	tokens *auth.TokenManager,
	mail *mailer.Mailer,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	threshold := cfg.Inventory.LowStockThreshold

	rawMaterialRepo := repository.NewRawMaterialRepository(db, threshold, logger)
	finishedGoodRepo := repository.NewFinishedGoodRepository(db, threshold, logger)
	requestRepo := repository.NewRequestRepository(db, logger)
	supplierRepo := repository.NewSupplierRepository(db, logger)

	rawMaterialHandler := &handlers.InventoryHandler{Repo: rawMaterialRepo, Hub: wsHub, Logger: logger}
	finishedGoodHandler := &handlers.InventoryHandler{Repo: finishedGoodRepo, Hub: wsHub, Logger: logger}
	requestHandler := &handlers.RequestHandler{Repo: requestRepo}
	supplierHandler := &handlers.SupplierHandler{Repo: supplierRepo, DB: db, Mailer: mail}
	productHandler := &handlers.ProductHandler{DB: db}
	employeeHandler := &handlers.EmployeeHandler{DB: db, Tokens: tokens, S3Uploader: s3Uploader}
	taskHandler := &handlers.TaskHandler{DB: db}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, Tokens: tokens, Logger: logger}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", employeeHandler.Register)
			authGroup.POST("/login", employeeHandler.Login)
		}

		inventoryRoutes(apiV1.Group("/inventory"), rawMaterialHandler)
		inventoryRoutes(apiV1.Group("/end-products"), finishedGoodHandler)

		requests := apiV1.Group("/requests")
		{
			requests.POST("/", requestHandler.Create)
			requests.GET("/", requestHandler.List)
			requests.GET("/:id", requestHandler.Get)
			requests.PUT("/:id", requestHandler.Update)
			requests.DELETE("/:id", requestHandler.Delete)
			requests.PATCH("/:id/approve", requestHandler.Approve)
			requests.PATCH("/:id/reject", requestHandler.Reject)
		}

		suppliers := apiV1.Group("/suppliers")
		{
			suppliers.GET("/", supplierHandler.List)
			suppliers.POST("/", supplierHandler.Create)
			suppliers.PUT("/:id", supplierHandler.Update)
			suppliers.DELETE("/:id", supplierHandler.Delete)
			suppliers.POST("/send-request", supplierHandler.SendRequest)
		}

		products := apiV1.Group("/products")
		{
			products.POST("/", productHandler.Create)
			products.GET("/", productHandler.List)
		}

		// Employee and task management requires a logged-in employee.
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(tokens))
		{
			employees := protected.Group("/employees")
			{
				employees.GET("/", employeeHandler.List)
				employees.GET("/:id", employeeHandler.Get)
				employees.PUT("/:id", employeeHandler.Update)
				employees.POST("/:id/photo", employeeHandler.UploadPhoto)

				adminOnly := employees.Group("/")
				adminOnly.Use(middleware.Authorize("admin"))
				{
					adminOnly.DELETE("/:id", employeeHandler.Delete)
				}
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("/", taskHandler.List)
				tasks.GET("/stats", taskHandler.Stats)
				tasks.GET("/:id", taskHandler.Get)
				tasks.POST("/", taskHandler.Create)
				tasks.PUT("/:id", taskHandler.Update)
				tasks.DELETE("/:id", taskHandler.Delete)
			}
		}
	}

	return router
}

func inventoryRoutes(group *gin.RouterGroup, handler *handlers.InventoryHandler) {
	group.GET("/", handler.List)
	group.GET("/low-stock", handler.ListLowStock)
	group.GET("/category/:category", handler.ListByCategory)
	group.GET("/:id", handler.Get)
	group.POST("/", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
