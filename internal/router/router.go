package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetStats(c *ginext.Context)
	ListAttendees(c *ginext.Context)
	GetAttendee(c *ginext.Context)
	ExportAttendees(c *ginext.Context)
	SendEmail(c *ginext.Context)
	RemoveAttendee(c *ginext.Context)
	CheckIn(c *ginext.Context)
	ManualCheckIn(c *ginext.Context)
	RecentCheckIns(c *ginext.Context)
}

func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id/stats", h.GetStats)
		api.GET("/events/:id/export", h.ExportAttendees)

		// Attendees
		api.GET("/events/:id/attendees", h.ListAttendees)
		api.GET("/events/:id/attendees/:attendee_id", h.GetAttendee)
		api.POST("/events/:id/attendees/:attendee_id/email", h.SendEmail)
		api.POST("/events/:id/attendees/:attendee_id/remove", h.RemoveAttendee)

		// Check-in
		api.POST("/events/:id/check-in", h.CheckIn)
		api.POST("/events/:id/check-in/manual", h.ManualCheckIn)
		api.GET("/events/:id/check-ins/recent", h.RecentCheckIns)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
