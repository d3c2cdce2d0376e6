package routes

import (
	"net/http"

	"bamboo/admin"
	"bamboo/auth"
	"bamboo/cart"
	"bamboo/invoice"
	"bamboo/middleware"
	"bamboo/models"
	"bamboo/orders"
	"bamboo/products"
	"bamboo/ratelim"
	"bamboo/ws"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.GET("/api/auth/me", middleware.Authenticate(auth.GetMe))
	router.POST("/api/auth/me", middleware.Authenticate(auth.UpdateMe))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/my-products", middleware.Authenticate(dealerOnly(products.GetMyProducts)))
	router.GET("/api/product/:id", products.GetProduct)
	router.POST("/api/products", middleware.Authenticate(dealerOnly(products.CreateProduct)))
	router.PUT("/api/products/:id", middleware.Authenticate(dealerOnly(products.EditProduct)))
	router.DELETE("/api/products/:id", middleware.Authenticate(dealerOnly(products.DeleteProduct)))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.DELETE("/api/cart/:productId", middleware.Authenticate(cart.RemoveFromCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders/checkout", rl.Limit(middleware.Authenticate(orders.Checkout)))
	router.GET("/api/orders/user-orders", middleware.Authenticate(orders.GetUserOrders))
	router.GET("/api/orders/user-orders/:id/invoice", middleware.Authenticate(invoice.PrintInvoice))
	router.GET("/api/orders/my-orders", middleware.Authenticate(dealerOnly(orders.GetMyOrders)))
	router.PUT("/api/orders/my-orders/:id", middleware.Authenticate(dealerOnly(orders.UpdateOrderStatus)))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/admin/users", middleware.Authenticate(adminOnly(admin.GetUsers)))
	router.DELETE("/api/admin/users/:id", middleware.Authenticate(adminOnly(admin.DeleteUser)))
	router.GET("/api/admin/analytics", middleware.Authenticate(adminOnly(admin.GetAnalytics)))
}

func AddOrderFeedRoutes(router *httprouter.Router, hub *ws.Hub) {
	router.GET("/ws/orders", ws.OrderFeed(hub))
}

func dealerOnly(next httprouter.Handle) httprouter.Handle {
	return middleware.RequireRole(next, models.RoleDealer)
}

func adminOnly(next httprouter.Handle) httprouter.Handle {
	return middleware.RequireRole(next, models.RoleAdmin)
}
