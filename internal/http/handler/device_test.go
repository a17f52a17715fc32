package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantmon/internal/model"
	"plantmon/internal/service"
	serviceMocks "plantmon/internal/service/mocks"
)

func strPtr(s string) *string { return &s }

func TestListDevices(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Get("/GetDevices/", ListDevices(mockSvc))

	t.Run("success", func(t *testing.T) {
		plantID := primitive.NewObjectID().Hex()
		expected := []model.Device{
			{ID: primitive.NewObjectID().Hex(), DeviceName: "sensor-01", PlantID: &plantID},
			{ID: primitive.NewObjectID().Hex(), DeviceName: "sensor-02", PlantID: nil},
		}
		mockSvc.On("List", mock.Anything).Return(expected, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/GetDevices/", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Device
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		assert.Equal(t, plantID, *result[0].PlantID)
		assert.Nil(t, result[1].PlantID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/GetDevices/", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListAvailableDevices(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Get("/GetAvailableDevices/", ListAvailableDevices(mockSvc))

	expected := []model.Device{
		{ID: primitive.NewObjectID().Hex(), DeviceName: "spare-sensor", PlantID: nil},
	}
	mockSvc.On("ListAvailable", mock.Anything).Return(expected, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/GetAvailableDevices/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result []model.Device
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result, 1)
	assert.Nil(t, result[0].PlantID)
	mockSvc.AssertExpectations(t)
}

func TestGetDevice(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Get("/GetDevice", GetDevice(mockSvc))

	deviceID := primitive.NewObjectID().Hex()
	plantID := primitive.NewObjectID().Hex()

	t.Run("by device id", func(t *testing.T) {
		expected := &model.Device{ID: deviceID, DeviceName: "sensor-01", PlantID: &plantID}
		mockSvc.On("Get", mock.Anything, deviceID, "").Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/GetDevice", `{"device_id":"`+deviceID+`"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Device
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, deviceID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("by plant id", func(t *testing.T) {
		expected := &model.Device{ID: deviceID, DeviceName: "sensor-01", PlantID: &plantID}
		mockSvc.On("Get", mock.Anything, "", plantID).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/GetDevice", `{"plant_id":"`+plantID+`"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("device id wins when both are sent", func(t *testing.T) {
		expected := &model.Device{ID: deviceID, DeviceName: "sensor-01"}
		mockSvc.On("Get", mock.Anything, deviceID, plantID).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/GetDevice",
			`{"device_id":"`+deviceID+`","plant_id":"`+plantID+`"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("neither id given", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodGet, "/GetDevice", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ID_REQUIRED", body.Error.Code)
		assert.Equal(t, "You must provide either a device ID or plant ID", body.Error.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, deviceID, "").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/GetDevice", `{"device_id":"`+deviceID+`"}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Device not found", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateDevice(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Post("/CreateDevice/", CreateDevice(mockSvc))

	t.Run("with plant link", func(t *testing.T) {
		plantID := primitive.NewObjectID().Hex()
		created := &model.Device{ID: primitive.NewObjectID().Hex(), DeviceName: "sensor-01", PlantID: &plantID}
		mockSvc.On("Create", mock.Anything, "sensor-01", plantID).Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/CreateDevice/",
			`{"device_name":"sensor-01","plant_id":"`+plantID+`"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Device
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, created.ID, result.ID)
		assert.Equal(t, plantID, *result.PlantID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("without plant link stores a null assignment", func(t *testing.T) {
		created := &model.Device{ID: primitive.NewObjectID().Hex(), DeviceName: "sensor-02", PlantID: nil}
		mockSvc.On("Create", mock.Anything, "sensor-02", "").Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/CreateDevice/", `{"device_name":"sensor-02"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Device
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Nil(t, result.PlantID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing device_name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/CreateDevice/", `{"plant_id":""}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "DEVICE_NAME_REQUIRED", body.Error.Code)
	})

	t.Run("malformed plant_id", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "sensor-03", "not-hex").
			Return(nil, service.ErrInvalidID).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/CreateDevice/",
			`{"device_name":"sensor-03","plant_id":"not-hex"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDevice(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Put("/UpdateDevice/", UpdateDevice(mockSvc))

	deviceID := primitive.NewObjectID().Hex()

	t.Run("link to a plant", func(t *testing.T) {
		plantID := primitive.NewObjectID().Hex()
		mockSvc.On("Update", mock.Anything, service.DeviceUpdateInput{
			DeviceID: deviceID,
			PlantID:  strPtr(plantID),
		}).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/",
			`{"device_id":"`+deviceID+`","plant_id":"`+plantID+`"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "Device updated successfully", result["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty plant_id unlinks", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, service.DeviceUpdateInput{
			DeviceID: deviceID,
			PlantID:  strPtr(""),
		}).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/",
			`{"device_id":"`+deviceID+`","plant_id":""}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, service.DeviceUpdateInput{
			DeviceID:   deviceID,
			DeviceName: strPtr("renamed"),
		}).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/",
			`{"device_id":"`+deviceID+`","device_name":"renamed"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no fields provided", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, service.DeviceUpdateInput{DeviceID: deviceID}).
			Return(service.ErrNoUpdateFields).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/", `{"device_id":"`+deviceID+`"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NO_UPDATE_FIELDS", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing device_id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/", `{"device_name":"renamed"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ID_REQUIRED", body.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, mock.Anything).
			Return(service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/UpdateDevice/",
			`{"device_id":"`+deviceID+`","device_name":"renamed"}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Device not found", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDevice(t *testing.T) {
	mockSvc := new(serviceMocks.MockDeviceService)
	app := fiber.New()
	app.Delete("/DeleteDevice/", DeleteDevice(mockSvc))

	deviceID := primitive.NewObjectID().Hex()

	t.Run("success reports 204", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, deviceID).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/DeleteDevice/", `{"id":"`+deviceID+`"}`))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/DeleteDevice/", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ID_REQUIRED", body.Error.Code)
		assert.Equal(t, "Device ID not provided", body.Error.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, deviceID).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/DeleteDevice/", `{"id":"`+deviceID+`"}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
