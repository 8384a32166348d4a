package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/service"
)

type ClassHandler struct {
	classService    service.ClassService
	scheduleService service.ScheduleService
	validate        *validator.Validate
}

func NewClassHandler(classService service.ClassService, scheduleService service.ScheduleService) *ClassHandler {
	return &ClassHandler{
		classService:    classService,
		scheduleService: scheduleService,
		validate:        validator.New(),
	}
}

type CreateClassRequest struct {
	Name      string `json:"name" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Day       string `json:"day" validate:"required"`
	Img       string `json:"img"`
	TrainerID string `json:"trainer" validate:"required,uuid"`
}

func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var request CreateClassRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required", "details": err.Error()})
	}

	trainerID, err := uuid.Parse(request.TrainerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	class := &model.Class{
		Name:      request.Name,
		Time:      request.Time,
		Day:       request.Day,
		Img:       request.Img,
		TrainerID: trainerID,
	}

	created, err := h.classService.Schedule(c.Context(), class)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "scheduling class failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to schedule class"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Class scheduled successfully",
		"class":   created,
	})
}

func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.classService.List(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "listing classes failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve classes"})
	}

	return c.Status(fiber.StatusOK).JSON(classes)
}

type ReserveRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *ClassHandler) ReserveClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class ID format"})
	}

	var request ReserveRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID is required"})
	}

	userID, err := uuid.Parse(request.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	if err := h.classService.Reserve(c.Context(), classID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		case errors.Is(err, service.ErrAlreadyReserved):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have already reserved this class"})
		case errors.Is(err, service.ErrClassFull):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Class is fully reserved"})
		case errors.Is(err, service.ErrReservationLost):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reserve the class"})
		default:
			slog.ErrorContext(c.UserContext(), "reserving class failed", slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reserve class"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Class reserved successfully"})
}

func (h *ClassHandler) ClassesByDay(c *fiber.Ctx) error {
	byDay, err := h.scheduleService.ByDay(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "fetching classes by day failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve classes"})
	}

	return c.Status(fiber.StatusOK).JSON(byDay)
}

func (h *ClassHandler) ClassesWithTrainees(c *fiber.Ctx) error {
	classes, err := h.scheduleService.WithTrainees(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "fetching classes with trainees failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve classes with trainees"})
	}

	return c.Status(fiber.StatusOK).JSON(classes)
}

func (h *ClassHandler) BookedClasses(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	classes, err := h.scheduleService.ByUser(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "fetching booked classes failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve booked classes."})
	}

	return c.Status(fiber.StatusOK).JSON(classes)
}
