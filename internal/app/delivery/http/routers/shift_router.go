package routers

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/delivery/http/middlewares"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/shifts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorShiftRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorShiftController *shifts.DoctorShiftController) {
	router.Use(middlewares.Authenticate)

	router.Get("/current-doctor", doctorShiftController.GetCurrentDoctor)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.TenderlyRoleAdmin))
		r.Get("/", doctorShiftController.ListShifts)
		r.Post("/", doctorShiftController.CreateShift)
		r.Patch("/{shiftID}", doctorShiftController.UpdateShift)
	})
}
