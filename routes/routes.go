package routes

import (
	"coffeepos/configs"
	"coffeepos/controllers"
	"coffeepos/events"
	"coffeepos/middlewares"
	"coffeepos/repository"
	"coffeepos/services"
	"coffeepos/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.StatsHub, publisher *events.Publisher) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	statRepo := repository.NewStatisticRepository(db)
	payRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(menuRepo)
	statSvc := services.NewStatisticService(statRepo, cfg.StatSmilesSeed)
	checkoutSvc := services.NewCheckoutService(db, cartSvc, txRepo, payRepo, statSvc)
	checkoutSvc.StatsHub = hub
	checkoutSvc.Events = publisher
	chatSvc := services.NewChatService(cfg.GeminiAPIKey)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	txCtrl := controllers.NewTransactionController(txRepo)
	statCtrl := controllers.NewStatisticController(statSvc, hub)
	payCtrl := controllers.NewPaymentController(payRepo)
	chatCtrl := controllers.NewChatController(chatSvc)
	adminCtrl := controllers.NewAdminController(authSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public reads
	r.GET("/menu", menuCtrl.ListActive)
	r.GET("/payment-methods", payCtrl.List)

	// Cart (any signed-in role)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.SetQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout
	r.POST("/checkout", middlewares.AuthMiddleware(cfg.JWTSecret), checkoutCtrl.Checkout)

	// Own purchase history
	r.GET("/profile/transactions", middlewares.AuthMiddleware(cfg.JWTSecret), txCtrl.ListForMe)

	// Chat assistant
	r.POST("/chat", middlewares.AuthMiddleware(cfg.JWTSecret), chatCtrl.Complete)

	// Staff (staff/admin)
	staff := r.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"))
	{
		staff.GET("/transactions", txCtrl.List)
		staff.GET("/transactions/:id", txCtrl.Detail)
		staff.DELETE("/transactions/:id", txCtrl.Delete)
		staff.GET("/stats/daily", statCtrl.Daily)
		staff.GET("/stats/range", statCtrl.Range)
	}

	// Live dashboard feed (token via query string)
	r.GET("/ws/stats", middlewares.WSAuthMiddleware(cfg.JWTSecret), statCtrl.Live)

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu", menuCtrl.ListAll)
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/role", adminCtrl.SetRole)

		admin.DELETE("/transactions", txCtrl.ClearAll)
	}
}
