package handler

import (
	"github.com/gofiber/fiber/v2"

	"plantmon/internal/model"
	"plantmon/internal/service"
)

type createSensorOutputRequest struct {
	PlantID      string  `json:"plant_id"`
	Temperature  float64 `json:"temperature"`
	SoilMoisture float64 `json:"soil_moisture"`
	LightLevel   float64 `json:"light_level"`
	Humidity     float64 `json:"humidity"`
}

// ListSensorOutputs returns all readings recorded for one plant. An empty
// result reports 404, kept from the legacy contract.
//
// @Summary List all sensor outputs by plant ID
// @Tags sensor-outputs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idRequest true "Plant ID"
// @Success 200 {array} model.SensorReading
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /GetSensorOutputs/ [get]
func ListSensorOutputs(sensorSvc service.SensorReadingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req idRequest
		_ = c.BodyParser(&req)
		if req.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		readings, err := sensorSvc.ListByPlant(c.UserContext(), req.ID)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "No sensor values found for the specified plant")
		}
		if len(readings) == 0 {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "No sensor values found for the specified plant")
		}
		return c.JSON(readings)
	}
}

// CreateSensorOutput stores one reading for a plant. The timestamp is assigned
// server-side; the plant reference is not validated.
//
// @Summary Create a sensor output for a plant
// @Tags sensor-outputs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createSensorOutputRequest true "Reading"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /CreateSensorOutput/ [post]
func CreateSensorOutput(sensorSvc service.SensorReadingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createSensorOutputRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.PlantID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		id, err := sensorSvc.Create(c.UserContext(), &model.SensorReading{
			PlantID:      req.PlantID,
			Temperature:  req.Temperature,
			SoilMoisture: req.SoilMoisture,
			LightLevel:   req.LightLevel,
			Humidity:     req.Humidity,
		})
		if err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "No sensor values found for the specified plant")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": id})
	}
}
