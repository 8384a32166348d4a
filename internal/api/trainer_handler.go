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

type TrainerHandler struct {
	trainerService service.TrainerService
	validate       *validator.Validate
}

func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		trainerService: trainerService,
		validate:       validator.New(),
	}
}

type TrainerRequest struct {
	Avatar      string `json:"avatar" validate:"required"`
	Name        string `json:"name" validate:"required,min=2"`
	Role        string `json:"role" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
}

func (r *TrainerRequest) toModel() *model.Trainer {
	trainer := &model.Trainer{
		Avatar:      r.Avatar,
		Name:        r.Name,
		Role:        r.Role,
		Subject:     r.Subject,
		Description: r.Description,
		Gender:      r.Gender,
	}
	if r.Email != "" {
		trainer.Email = &r.Email
	}
	return trainer
}

func (h *TrainerHandler) AddTrainer(c *fiber.Ctx) error {
	var request TrainerRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required", "details": err.Error()})
	}

	trainer, err := h.trainerService.Add(c.Context(), request.toModel())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "adding trainer failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add trainer"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Trainer added successfully",
		"trainer": trainer,
	})
}

func (h *TrainerHandler) ListTrainers(c *fiber.Ctx) error {
	trainers, err := h.trainerService.List(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "listing trainers failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve trainers"})
	}

	return c.Status(fiber.StatusOK).JSON(trainers)
}

func (h *TrainerHandler) GetTrainer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	trainer, err := h.trainerService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		slog.ErrorContext(c.UserContext(), "getting trainer failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve trainer"})
	}

	return c.Status(fiber.StatusOK).JSON(trainer)
}

func (h *TrainerHandler) UpdateTrainer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	var request TrainerRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required", "details": err.Error()})
	}

	trainer := request.toModel()
	trainer.ID = id

	if err := h.trainerService.Update(c.Context(), trainer); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		slog.ErrorContext(c.UserContext(), "updating trainer failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trainer"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Trainer updated successfully"})
}

func (h *TrainerHandler) DeleteTrainer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	if err := h.trainerService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		slog.ErrorContext(c.UserContext(), "deleting trainer failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trainer"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Trainer deleted successfully"})
}
