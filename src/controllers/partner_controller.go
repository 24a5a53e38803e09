package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/lib"
	"github.com/royhasan/StudyMate-Server/src/models"
	"github.com/royhasan/StudyMate-Server/src/services"
)

type PartnerController struct {
	service *services.PartnerService
	logger  *zap.Logger
}

func NewPartnerController(service *services.PartnerService, logger *zap.Logger) *PartnerController {
	return &PartnerController{service: service, logger: logger}
}

// CreatePartner creates a partner profile from the request body
func (ctl *PartnerController) CreatePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if err := c.BodyParser(&partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	result, err := ctl.service.Create(c.Context(), partner)
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
		}
		ctl.logger.Error("failed to create partner profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create partner profile"))
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetPartners lists partners, optionally filtered by subject search and
// sorted by experience level
func (ctl *PartnerController) GetPartners(c *fiber.Ctx) error {
	search := c.Query("search")
	sort := c.Query("sort")

	partners, err := ctl.service.List(c.Context(), search, sort)
	if err != nil {
		ctl.logger.Error("failed to fetch partners", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to fetch partners"))
	}

	return c.Status(fiber.StatusOK).JSON(partners)
}

// GetPartner fetches a single partner profile by id
func (ctl *PartnerController) GetPartner(c *fiber.Ctx) error {
	partner, err := ctl.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid ID format"))
		}
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Partner not found"))
		}
		ctl.logger.Error("failed to fetch partner details", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to fetch partner details"))
	}

	return c.Status(fiber.StatusOK).JSON(partner)
}

// UpdatePartner merges the fields present in the body into the profile
func (ctl *PartnerController) UpdatePartner(c *fiber.Ctx) error {
	var patch models.PartnerPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	result, err := ctl.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
		}
		ctl.logger.Error("failed to update partner profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to update partner profile"))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// DeletePartner removes a profile; its connection records are untouched
func (ctl *PartnerController) DeletePartner(c *fiber.Ctx) error {
	result, err := ctl.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid ID format"))
		}
		ctl.logger.Error("failed to delete partner profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to delete partner profile"))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetTopPartners returns the three highest-rated profiles
func (ctl *PartnerController) GetTopPartners(c *fiber.Ctx) error {
	partners, err := ctl.service.TopRated(c.Context())
	if err != nil {
		ctl.logger.Error("failed to fetch top partners", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to fetch top partners"))
	}

	return c.Status(fiber.StatusOK).JSON(partners)
}
