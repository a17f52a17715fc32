package handler

import (
	"github.com/gofiber/fiber/v2"

	"plantmon/internal/service"
)

// deviceQuery selects a device either directly or through the plant it is
// assigned to. When both are given the device ID wins.
type deviceQuery struct {
	DeviceID string `json:"device_id"`
	PlantID  string `json:"plant_id"`
}

type createDeviceRequest struct {
	DeviceName string `json:"device_name"`
	PlantID    string `json:"plant_id"`
}

// updateDeviceRequest distinguishes absent fields from empty ones: a nil
// pointer leaves the field untouched, an empty plant_id unlinks the device.
type updateDeviceRequest struct {
	DeviceID   string  `json:"device_id"`
	DeviceName *string `json:"device_name"`
	PlantID    *string `json:"plant_id"`
}

// ListDevices returns all registered devices.
//
// @Summary List all devices
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Device
// @Failure 401 {object} errorPayload
// @Router /GetDevices/ [get]
func ListDevices(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		devices, err := deviceSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(devices)
	}
}

// ListAvailableDevices returns devices not yet assigned to any plant.
//
// @Summary List devices without a plant assignment
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Device
// @Failure 401 {object} errorPayload
// @Router /GetAvailableDevices/ [get]
func ListAvailableDevices(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		devices, err := deviceSvc.ListAvailable(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(devices)
	}
}

// GetDevice returns a device by device ID or by assigned plant ID.
//
// @Summary Get a device by device ID or plant ID
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body deviceQuery true "Device or plant ID"
// @Success 200 {object} model.Device
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /GetDevice [get]
func GetDevice(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req deviceQuery
		_ = c.BodyParser(&req)
		if req.DeviceID == "" && req.PlantID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "You must provide either a device ID or plant ID")
		}

		device, err := deviceSvc.Get(c.UserContext(), req.DeviceID, req.PlantID)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "Device not found")
		}
		return c.JSON(device)
	}
}

// CreateDevice registers a new device, optionally linked to a plant.
//
// @Summary Create a new device
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createDeviceRequest true "Device fields"
// @Success 201 {object} model.Device
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /CreateDevice/ [post]
func CreateDevice(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createDeviceRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.DeviceName == "" {
			return writeError(c, fiber.StatusBadRequest, "DEVICE_NAME_REQUIRED", "device_name is required")
		}

		device, err := deviceSvc.Create(c.UserContext(), req.DeviceName, req.PlantID)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "Device not found")
		}
		return c.Status(fiber.StatusCreated).JSON(device)
	}
}

// UpdateDevice applies a partial update. An empty plant_id unlinks the device
// from its plant; absent fields stay untouched.
//
// @Summary Update a device by ID
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body updateDeviceRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /UpdateDevice/ [put]
func UpdateDevice(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateDeviceRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.DeviceID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "Device ID not provided")
		}

		err := deviceSvc.Update(c.UserContext(), service.DeviceUpdateInput{
			DeviceID:   req.DeviceID,
			DeviceName: req.DeviceName,
			PlantID:    req.PlantID,
		})
		if err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "Device not found")
		}
		return c.JSON(fiber.Map{"message": "Device updated successfully"})
	}
}

// DeleteDevice removes a device by ID.
//
// @Summary Delete a device by ID
// @Tags devices
// @Accept json
// @Security BearerAuth
// @Param body body idRequest true "Device ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /DeleteDevice/ [delete]
func DeleteDevice(deviceSvc service.DeviceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req idRequest
		_ = c.BodyParser(&req)
		if req.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "Device ID not provided")
		}

		if err := deviceSvc.Delete(c.UserContext(), req.ID); err != nil {
			return writeServiceError(c, err, fiber.StatusNotFound, "Device not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
