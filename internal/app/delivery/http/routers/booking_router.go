package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.Book)
	router.Get("/", bookingController.FindAll)
	router.Get(fmt.Sprintf("/{%s}", controllers.URLParamConfirmationID), bookingController.FindByConfirmationID)
}
