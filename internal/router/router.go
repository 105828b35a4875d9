package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitBloodRequest(c *ginext.Context)
	RequestMobilization(c *ginext.Context)
	ListMobilizations(c *ginext.Context)
	ListPeriods(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Blood supply workflow
		api.POST("/blood-requests", h.SubmitBloodRequest)
		api.POST("/blood-requests/:id/mobilize", h.RequestMobilization)
		api.GET("/mobilizations", h.ListMobilizations)

		// Donation periods
		api.GET("/periods", h.ListPeriods)

		// Scheduled events
		api.GET("/events", h.ListEvents)
		api.POST("/events/:id/register", h.RegisterForEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
