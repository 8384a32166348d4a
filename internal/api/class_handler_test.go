package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/merajfaizan/gym-management-backend/internal/api"
	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/service"
)

type stubClassService struct {
	reserveErr error
}

func (s *stubClassService) Schedule(ctx context.Context, class *model.Class) (*model.Class, error) {
	class.ID = uuid.New()
	return class, nil
}

func (s *stubClassService) List(ctx context.Context) ([]model.Class, error) {
	return []model.Class{}, nil
}

func (s *stubClassService) Reserve(ctx context.Context, classID, userID uuid.UUID) error {
	return s.reserveErr
}

type stubScheduleService struct{}

func (s *stubScheduleService) ByDay(ctx context.Context) (map[string][]model.ClassView, error) {
	return map[string][]model.ClassView{}, nil
}

func (s *stubScheduleService) WithTrainees(ctx context.Context) ([]model.ClassWithTrainees, error) {
	return []model.ClassWithTrainees{}, nil
}

func (s *stubScheduleService) ByUser(ctx context.Context, userID uuid.UUID) ([]model.BookedClassView, error) {
	return []model.BookedClassView{}, nil
}

func reserveApp(reserveErr error) *fiber.App {
	handler := api.NewClassHandler(&stubClassService{reserveErr: reserveErr}, &stubScheduleService{})
	app := fiber.New()
	app.Put("/classes/:classId/reserve", handler.ReserveClass)
	return app
}

func reserveRequest(classID, userID string) *http.Request {
	body, _ := json.Marshal(fiber.Map{"userId": userID})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/classes/%s/reserve", classID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestReserveClass_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		reserveErr error
		wantStatus int
	}{
		{"success", nil, fiber.StatusOK},
		{"class not found", service.ErrClassNotFound, fiber.StatusNotFound},
		{"already reserved", service.ErrAlreadyReserved, fiber.StatusBadRequest},
		{"class full", service.ErrClassFull, fiber.StatusBadRequest},
		{"lost race", service.ErrReservationLost, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := reserveApp(tt.reserveErr)

			resp, err := app.Test(reserveRequest(uuid.NewString(), uuid.NewString()))
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestReserveClass_InvalidClassID(t *testing.T) {
	app := reserveApp(nil)

	resp, err := app.Test(reserveRequest("not-a-uuid", uuid.NewString()))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReserveClass_InvalidUserID(t *testing.T) {
	app := reserveApp(nil)

	resp, err := app.Test(reserveRequest(uuid.NewString(), "not-a-uuid"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReserveClass_MissingUserID(t *testing.T) {
	app := reserveApp(nil)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/classes/%s/reserve", uuid.NewString()), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateClass_RequiresValidTrainerID(t *testing.T) {
	handler := api.NewClassHandler(&stubClassService{}, &stubScheduleService{})
	app := fiber.New()
	app.Post("/classes", handler.CreateClass)

	body, _ := json.Marshal(fiber.Map{
		"name":    "Yoga",
		"time":    "10:00 AM",
		"day":     "Monday",
		"trainer": "not-a-uuid",
	})
	req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateClass_Created(t *testing.T) {
	handler := api.NewClassHandler(&stubClassService{}, &stubScheduleService{})
	app := fiber.New()
	app.Post("/classes", handler.CreateClass)

	body, _ := json.Marshal(fiber.Map{
		"name":    "Yoga",
		"time":    "10:00 AM",
		"day":     "Monday",
		"trainer": uuid.NewString(),
	})
	req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
