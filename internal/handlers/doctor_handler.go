package handlers

import (
	"errors"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DoctorHandler struct {
	doctorService *services.DoctorService
}

func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

func isDoctorValidationErr(err error) bool {
	return errors.Is(err, services.ErrInvalidSpecialization) ||
		errors.Is(err, services.ErrLicenseRequired) ||
		errors.Is(err, services.ErrExperienceOutOfRange) ||
		errors.Is(err, services.ErrWrongRole)
}

func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.doctorService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProfileExists), errors.Is(err, services.ErrLicenseTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isDoctorValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create doctor",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *DoctorHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	resp, err := h.doctorService.List(services.DoctorFilters{
		Page:           page,
		Limit:          limit,
		Search:         c.Query("search", ""),
		Specialization: c.Query("specialization", ""),
		Accepting:      queryBool(c, "accepting_new_patients"),
		Sort:           c.Query("sort", ""),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch doctors",
		})
	}
	return c.JSON(resp)
}

func (h *DoctorHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid doctor ID",
		})
	}

	resp, err := h.doctorService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *DoctorHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid doctor ID",
		})
	}

	var req dto.UpdateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.doctorService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrLicenseTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isDoctorValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update doctor",
		})
	}
	return c.JSON(resp)
}

func (h *DoctorHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid doctor ID",
		})
	}

	if err := h.doctorService.Delete(id); err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete doctor",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Doctor deleted successfully"})
}
