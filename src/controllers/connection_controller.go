package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/lib"
	"github.com/royhasan/StudyMate-Server/src/models"
	"github.com/royhasan/StudyMate-Server/src/services"
)

type ConnectionController struct {
	service *services.ConnectionService
	logger  *zap.Logger
}

func NewConnectionController(service *services.ConnectionService, logger *zap.Logger) *ConnectionController {
	return &ConnectionController{service: service, logger: logger}
}

// SendConnectionRequest submits a connection request to a partner
func (ctl *ConnectionController) SendConnectionRequest(c *fiber.Ctx) error {
	var input models.ConnectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	result, err := ctl.service.Submit(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Request already sent!"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
		}
		ctl.logger.Error("failed to send partner request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to send partner request"))
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetConnections lists connection requests, optionally for one sender
func (ctl *ConnectionController) GetConnections(c *fiber.Ctx) error {
	connections, err := ctl.service.List(c.Context(), c.Query("email"))
	if err != nil {
		ctl.logger.Error("failed to fetch connections", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to fetch connections"))
	}

	return c.Status(fiber.StatusOK).JSON(connections)
}

// UpdateConnection merges the editable fields into a connection record
func (ctl *ConnectionController) UpdateConnection(c *fiber.Ctx) error {
	var patch models.ConnectionPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	updated, err := ctl.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
		}
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Connection not found"))
		}
		ctl.logger.Error("failed to update connection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to update connection"))
	}

	if !updated {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "No changes made",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Connection updated successfully",
	})
}

// DeleteConnection removes a connection record by id
func (ctl *ConnectionController) DeleteConnection(c *fiber.Ctx) error {
	result, err := ctl.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid ID format"))
		}
		ctl.logger.Error("failed to delete connection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to delete connection"))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
