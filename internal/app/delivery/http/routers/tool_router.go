package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachToolRoutes(router chi.Router, middlewares *middlewares.Middlewares, toolController *controllers.ToolController) {
	router.Get("/", toolController.ListTools)
	router.Post("/call", toolController.CallTool)
}
