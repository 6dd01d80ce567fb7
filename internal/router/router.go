package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateHangout(c *ginext.Context)
	GetHangout(c *ginext.Context)
	ListHangouts(c *ginext.Context)
	JoinHangout(c *ginext.Context)
	CreateReservationOffer(c *ginext.Context)
	ListReservationOffers(c *ginext.Context)
	GetReservationOffer(c *ginext.Context)
	ClaimReservation(c *ginext.Context)
	UnclaimReservation(c *ginext.Context)
	UpdateReservationOffer(c *ginext.Context)
	CompleteReservationOffer(c *ginext.Context)
	CancelReservationOffer(c *ginext.Context)
	CreateCarOffer(c *ginext.Context)
	ListCarOffers(c *ginext.Context)
	GetCarOffer(c *ginext.Context)
	ClaimSeat(c *ginext.Context)
	ReleaseSeat(c *ginext.Context)
	UpdateCarOffer(c *ginext.Context)
	CompleteCarOffer(c *ginext.Context)
	CancelCarOffer(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Hangouts
		api.POST("/hangouts", h.CreateHangout)
		api.GET("/hangouts", h.ListHangouts)
		api.GET("/hangouts/:id", h.GetHangout)
		api.POST("/hangouts/:id/join", h.JoinHangout)

		// Reservation offers
		reservations := api.Group("/hangouts/:id/reservations")
		{
			reservations.POST("", h.CreateReservationOffer)
			reservations.GET("", h.ListReservationOffers)
			reservations.GET("/:offerID", h.GetReservationOffer)
			reservations.PATCH("/:offerID", h.UpdateReservationOffer)
			reservations.POST("/:offerID/claim", h.ClaimReservation)
			reservations.POST("/:offerID/unclaim", h.UnclaimReservation)
			reservations.POST("/:offerID/complete", h.CompleteReservationOffer)
			reservations.POST("/:offerID/cancel", h.CancelReservationOffer)
		}

		// Carpool offers
		carpools := api.Group("/hangouts/:id/carpools")
		{
			carpools.POST("", h.CreateCarOffer)
			carpools.GET("", h.ListCarOffers)
			carpools.GET("/:offerID", h.GetCarOffer)
			carpools.PATCH("/:offerID", h.UpdateCarOffer)
			carpools.POST("/:offerID/claim", h.ClaimSeat)
			carpools.POST("/:offerID/unclaim", h.ReleaseSeat)
			carpools.POST("/:offerID/complete", h.CompleteCarOffer)
			carpools.POST("/:offerID/cancel", h.CancelCarOffer)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
