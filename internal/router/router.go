package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ForgotPassword(c *ginext.Context)
	ResetPassword(c *ginext.Context)
	Me(c *ginext.Context)
	ListRooms(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	PaymentInstructions(c *ginext.Context)
	SubmitPayment(c *ginext.Context)
	Stats(c *ginext.Context)
	PendingPayments(c *ginext.Context)
	ApprovePayment(c *ginext.Context)
	RejectPayment(c *ginext.Context)
	AdminBookings(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUserStatus(c *ginext.Context)
	UpdateUserRole(c *ginext.Context)
	ConfirmationLetter(c *ginext.Context)
}

// Guards supply the route-group access middleware: session resolves who
// the caller is, user and staff decide what the caller may reach.
type Guards struct {
	Session ginext.HandlerFunc
	User    ginext.HandlerFunc
	Staff   ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/forgot-password", h.ForgotPassword)
			auth.POST("/reset-password", h.ResetPassword)
		}
		api.GET("/rooms", h.ListRooms)

		// Authenticated guests
		user := api.Group("", g.Session, g.User)
		{
			user.GET("/me", h.Me)
			user.POST("/bookings", h.CreateBooking)
			user.GET("/bookings", h.MyBookings)
			user.GET("/payments/instructions", h.PaymentInstructions)
			user.POST("/payments", h.SubmitPayment)
		}

		// Staff
		admin := api.Group("/admin", g.Session, g.Staff)
		{
			admin.GET("/stats", h.Stats)
			admin.GET("/payments/pending", h.PendingPayments)
			admin.POST("/payments/:id/approve", h.ApprovePayment)
			admin.POST("/payments/:id/reject", h.RejectPayment)
			admin.GET("/bookings", h.AdminBookings)
			admin.GET("/users", h.ListUsers)
			admin.GET("/users/:id", h.GetUser)
			admin.PUT("/users/:id/status", h.UpdateUserStatus)
			admin.PUT("/users/:id/role", h.UpdateUserRole)
			admin.GET("/users/:id/confirmation-letter", h.ConfirmationLetter)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
