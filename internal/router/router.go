package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/rawatanuj07/eventease/internal/middleware"
)

type Handler interface {
	ListEvents(c *gin.Context)
	GetEvent(c *gin.Context)
	CreateEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
	EventAttendees(c *gin.Context)
	CreateBooking(c *gin.Context)
	CancelBooking(c *gin.Context)
	ListUserBookings(c *gin.Context)
	ListMyBookings(c *gin.Context)
	Reconcile(c *gin.Context)
}

// InitRouter registers the API. auth must put the caller's identity on the
// request; mw runs for every route.
func InitRouter(mode string, h Handler, auth gin.HandlerFunc, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(mode)
	router := gin.New()
	router.Use(mw...)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Catalogue
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}

	user := api.Group("", auth)
	{
		user.POST("/bookings", h.CreateBooking)
		user.POST("/bookings/:id/cancel", h.CancelBooking)
		user.GET("/users/:id/bookings", h.ListUserBookings)
		user.GET("/me/bookings", h.ListMyBookings)
	}

	admin := api.Group("/admin", auth, middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/events", h.CreateEvent)
		admin.PUT("/events/:id", h.UpdateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)
		admin.GET("/events/:id/attendees", h.EventAttendees)
		admin.POST("/reconcile", h.Reconcile)
	}

	return router
}
