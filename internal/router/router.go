package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	Register(c *ginext.Context)
	Unregister(c *ginext.Context)
	MyRegistrations(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)

	CreateVolunteer(c *ginext.Context)
	GetVolunteer(c *ginext.Context)
	ListVolunteers(c *ginext.Context)
	UpdateVolunteer(c *ginext.Context)
	DeleteVolunteer(c *ginext.Context)

	Dashboard(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", h.Login)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", auth, adminOnly, h.CreateEvent)
		api.PUT("/events/:id", auth, adminOnly, h.UpdateEvent)
		api.DELETE("/events/:id", auth, adminOnly, h.DeleteEvent)

		// Registrations
		api.POST("/events/:id/register", auth, h.Register)
		api.DELETE("/events/:id/register", auth, h.Unregister)
		api.GET("/events/:id/registrations", auth, adminOnly, h.ListEventRegistrations)
		api.GET("/my-registrations", auth, h.MyRegistrations)

		// Volunteers
		api.POST("/volunteers", h.CreateVolunteer)
		api.GET("/volunteers", auth, adminOnly, h.ListVolunteers)
		api.GET("/volunteers/:id", auth, h.GetVolunteer)
		api.PUT("/volunteers/:id", auth, h.UpdateVolunteer)
		api.DELETE("/volunteers/:id", auth, h.DeleteVolunteer)

		// Dashboard
		api.GET("/dashboard", auth, h.Dashboard)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
