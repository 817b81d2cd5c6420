package routes

import (
	"net/http"

	"ecogrocer/admin"
	"ecogrocer/auth"
	"ecogrocer/cart"
	"ecogrocer/catalog"
	"ecogrocer/middleware"
	"ecogrocer/models"
	"ecogrocer/orders"
	"ecogrocer/profile"
	"ecogrocer/ratelim"
	"ecogrocer/waste"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.LogoutUser)
	router.POST("/api/auth/token/refresh", auth.RefreshToken)
	router.POST("/api/auth/otp/verify", rateLimiter.Limit(auth.VerifyOTPHandler))
	router.POST("/api/auth/otp/resend", rateLimiter.Limit(auth.ResendOTPHandler))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetMyProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateMyProfile))
	router.POST("/api/profile/avatar", middleware.Authenticate(profile.UploadAvatar))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/seller/products", middleware.RequireRoles(catalog.GetSellerProducts, models.RoleSeller))
	router.POST("/api/products", middleware.RequireRoles(catalog.AddProduct, models.RoleSeller, models.RoleAdmin))
	router.PUT("/api/products/:productid", middleware.RequireRoles(catalog.UpdateProduct, models.RoleSeller, models.RoleAdmin))
	router.DELETE("/api/products/:productid", middleware.RequireRoles(catalog.DeleteProduct, models.RoleSeller, models.RoleAdmin))
	router.POST("/api/products/image", middleware.RequireRoles(catalog.UploadProductImage, models.RoleSeller, models.RoleAdmin))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.PUT("/api/cart/:productid", middleware.Authenticate(cart.UpdateQuantity))
	router.DELETE("/api/cart/:productid", middleware.Authenticate(cart.RemoveFromCart))
	router.POST("/api/cart/checkout", middleware.Authenticate(cart.Checkout))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders", middleware.Authenticate(orders.GetMyOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.PrintInvoice))
	router.PUT("/api/orders/:orderid/status",
		middleware.RequireRoles(orders.UpdateOrderStatus, models.RoleAdmin, models.RoleDelivery))
}

func AddWasteRoutes(router *httprouter.Router) {
	router.POST("/api/waste/requests", middleware.Authenticate(waste.SubmitRequest))
	router.GET("/api/waste/requests", middleware.Authenticate(waste.GetMyRequests))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/customers", middleware.RequireRoles(admin.GetCustomers, models.RoleAdmin))

	router.GET("/api/admin/sellers", middleware.RequireRoles(admin.GetSellers, models.RoleAdmin))
	router.GET("/api/admin/sellers/pending", middleware.RequireRoles(admin.GetPendingSellers, models.RoleAdmin))
	router.POST("/api/admin/sellers/:id/approve", middleware.RequireRoles(admin.ApproveSeller, models.RoleAdmin))
	router.POST("/api/admin/sellers/:id/reject", middleware.RequireRoles(admin.RejectSeller, models.RoleAdmin))

	router.GET("/api/admin/delivery", middleware.RequireRoles(admin.GetDeliveryPartners, models.RoleAdmin))
	router.GET("/api/admin/delivery/pending", middleware.RequireRoles(admin.GetPendingDeliveryPartners, models.RoleAdmin))
	router.POST("/api/admin/delivery/:id/approve", middleware.RequireRoles(admin.ApproveDeliveryPartner, models.RoleAdmin))
	router.POST("/api/admin/delivery/:id/reject", middleware.RequireRoles(admin.RejectDeliveryPartner, models.RoleAdmin))

	router.GET("/api/admin/orders", middleware.RequireRoles(orders.GetAllOrders, models.RoleAdmin))
	router.GET("/api/admin/waste/requests", middleware.RequireRoles(waste.GetAllRequests, models.RoleAdmin))
	router.PUT("/api/admin/waste/requests/:requestid/status",
		middleware.RequireRoles(waste.UpdateRequestStatus, models.RoleAdmin))
}
