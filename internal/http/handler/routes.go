package handler

import (
	"github.com/gofiber/fiber/v2"

	"plantmon/internal/http/middleware"
	"plantmon/internal/model"
	"plantmon/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
//
// The method+path pairs, including trailing slashes and verb choices, are the
// contract the deployed mobile and device clients were built against and must
// not be changed.
func RegisterRoutes(
	app *fiber.App,
	ping PingFunc,
	authSvc service.AuthService,
	plantSvc service.PlantService,
	sensorSvc service.SensorReadingService,
	deviceSvc service.DeviceService,
) {
	// Public routes
	app.Get("/", Hello())
	app.Post("/GetAuth", Login(authSvc))
	app.Get("/health", HealthCheck(ping))
	app.Get("/healthz", LivenessProbe())

	// Every data route requires an authenticated identity holding one of the
	// monitoring roles. The guard is attached per route rather than as an
	// app-level group so unknown paths still fall through to the global 404.
	authn := middleware.Authenticate(authSvc)
	authz := middleware.RequireRoles(model.RolePlantMonitoring, model.RoleAdmin)
	guarded := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{authn, authz, h}
	}

	app.Get("/GetPlants/", guarded(ListPlants(plantSvc))...)
	app.Get("/GetPlant", guarded(GetPlant(plantSvc))...)
	app.Post("/CreatePlant/", guarded(CreatePlant(plantSvc))...)
	app.Put("/UpdatePlant/", guarded(UpdatePlant(plantSvc))...)
	app.Delete("/DeletePlant/", guarded(DeletePlant(plantSvc))...)
	app.Post("/UploadPlantImage/", guarded(UploadPlantImage(plantSvc))...)

	app.Get("/GetSensorOutputs/", guarded(ListSensorOutputs(sensorSvc))...)
	app.Post("/CreateSensorOutput/", guarded(CreateSensorOutput(sensorSvc))...)

	app.Get("/GetDevices/", guarded(ListDevices(deviceSvc))...)
	app.Get("/GetAvailableDevices/", guarded(ListAvailableDevices(deviceSvc))...)
	app.Get("/GetDevice", guarded(GetDevice(deviceSvc))...)
	app.Post("/CreateDevice/", guarded(CreateDevice(deviceSvc))...)
	app.Put("/UpdateDevice/", guarded(UpdateDevice(deviceSvc))...)
	app.Delete("/DeleteDevice/", guarded(DeleteDevice(deviceSvc))...)
}
