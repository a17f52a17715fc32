package handler

import (
	"github.com/gofiber/fiber/v2"

	"plantmon/internal/model"
	"plantmon/internal/service"
)

// idRequest is the body shape shared by the legacy read/delete endpoints,
// which carry the target ID in a JSON body even on GET and DELETE.
type idRequest struct {
	ID string `json:"id"`
}

type createPlantRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

const plantIDMissingMsg = "Plant ID not provided in the request body"

// ListPlants returns all plants.
//
// @Summary List all plants
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Plant
// @Failure 401 {object} errorPayload
// @Router /GetPlants/ [get]
func ListPlants(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plants, err := plantSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(plants)
	}
}

// GetPlant returns a single plant. The ID travels in the JSON body, and a
// missing plant reports 400, both kept from the legacy contract.
//
// @Summary Get a plant
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idRequest true "Plant ID"
// @Success 200 {object} model.Plant
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /GetPlant [get]
func GetPlant(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The body may be absent entirely; that counts as a missing ID.
		var req idRequest
		_ = c.BodyParser(&req)
		if req.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		plant, err := plantSvc.Get(c.UserContext(), req.ID)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusBadRequest, "Plant not found")
		}
		return c.JSON(plant)
	}
}

// CreatePlant stores a new plant and returns its assigned ID.
//
// @Summary Add a new plant
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createPlantRequest true "Plant fields"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /CreatePlant/ [post]
func CreatePlant(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPlantRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		id, err := plantSvc.Create(c.UserContext(), &model.Plant{
			Name:        req.Name,
			Type:        req.Type,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": id})
	}
}

// UpdatePlant overwrites all mutable fields of a plant. Success reports 201
// with the write details, kept from the legacy contract.
//
// @Summary Update a plant by ID
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Plant true "Plant with ID"
// @Success 201 {object} service.PlantUpdateDetails
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /UpdatePlant/ [put]
func UpdatePlant(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var plant model.Plant
		if err := c.BodyParser(&plant); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if plant.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		details, err := plantSvc.Update(c.UserContext(), &plant)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusBadRequest, "Plant not found")
		}
		return c.Status(fiber.StatusCreated).JSON(details)
	}
}

// DeletePlant removes a plant by ID. Success reports 201 with the delete
// details, kept from the legacy contract.
//
// @Summary Delete a plant by ID
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idRequest true "Plant ID"
// @Success 201 {object} service.PlantDeleteDetails
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /DeletePlant/ [delete]
func DeletePlant(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req idRequest
		_ = c.BodyParser(&req)
		if req.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		details, err := plantSvc.Delete(c.UserContext(), req.ID)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusBadRequest, "Plant not found")
		}
		return c.Status(fiber.StatusCreated).JSON(details)
	}
}

// UploadPlantImage stores an image for a plant in object storage and persists
// the public URL on the plant record. A missing plant reports 403, kept from
// the legacy contract.
//
// @Summary Upload a plant image
// @Tags plants
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param plant_id formData string true "Plant ID"
// @Param file formData file true "Image file"
// @Success 200 {object} service.PlantImageDetails
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Router /UploadPlantImage/ [post]
func UploadPlantImage(plantSvc service.PlantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plantID := c.FormValue("plant_id")
		if plantID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", plantIDMissingMsg)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		details, err := plantSvc.UploadImage(c.UserContext(), plantID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err, fiber.StatusForbidden, "Plant not found")
		}
		return c.Status(fiber.StatusOK).JSON(details)
	}
}
