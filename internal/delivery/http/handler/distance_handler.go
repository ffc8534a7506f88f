package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/pkg/utils"
	"github.com/places-service/internal/pkg/validator"
	"github.com/places-service/internal/usecase"
	"github.com/places-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// DistanceHandler serves distance queries between two place identifiers.
type DistanceHandler struct {
	distanceUC *usecase.DistanceUseCase
	logger     *zap.Logger
}

func NewDistanceHandler(distanceUC *usecase.DistanceUseCase, logger *zap.Logger) *DistanceHandler {
	return &DistanceHandler{
		distanceUC: distanceUC,
		logger:     logger,
	}
}

// StraightLine godoc
// @Summary Straight-line distance between two places
// @Description Resolves both identifiers (database id, zipcode or free-text address) and returns the great-circle distance in kilometers.
// @Tags Distance
// @Produce json
// @Param from query string true "Origin identifier"
// @Param to query string true "Destination identifier"
// @Success 200 {object} dto.DistanceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/distance [get]
func (h *DistanceHandler) StraightLine(c *fiber.Ctx) error {
	req := dto.DistanceRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingParameters)
	}

	result, err := h.distanceUC.StraightLine(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// Driving godoc
// @Summary Driving distance between two places
// @Description Resolves both identifiers and queries the routing backend for a drivable route with distance and duration.
// @Tags Distance
// @Produce json
// @Param from query string true "Origin identifier"
// @Param to query string true "Destination identifier"
// @Success 200 {object} dto.DrivingDistanceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/driving-distance [get]
func (h *DistanceHandler) Driving(c *fiber.Ctx) error {
	req := dto.DistanceRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingParameters)
	}

	result, err := h.distanceUC.Driving(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
