package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/pkg/utils"
	"github.com/places-service/internal/pkg/validator"
	"github.com/places-service/internal/usecase"
	"github.com/places-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler serves lookups and searches over the places dataset.
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// FindWithinRadius godoc
// @Summary Get places within a radius of a zipcode
// @Description Returns all places within the given radius (km) around the place identified by the zipcode, nearest first.
// @Tags Places
// @Produce json
// @Param zipcode path string true "Zipcode to search from"
// @Param radius path number true "Radius in kilometers"
// @Success 200 {object} dto.RadiusResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places/{zipcode}/{radius} [get]
func (h *PlaceHandler) FindWithinRadius(c *fiber.Ctx) error {
	radius, err := strconv.ParseFloat(c.Params("radius"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRadius)
	}

	req := dto.RadiusRequest{
		Zipcode:  c.Params("zipcode"),
		RadiusKm: radius,
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placeUC.FindWithinRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// Search godoc
// @Summary Search places by free text
// @Description Searches by name or zipcode substring. A query like "10115 Berlin" is treated as zipcode plus name filter.
// @Tags Places
// @Produce json
// @Param query path string true "Search query"
// @Param limit query int false "Maximum number of results" default(50)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/search/{query} [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	query, err := url.PathUnescape(c.Params("query"))
	if err != nil {
		query = c.Params("query")
	}

	req := dto.SearchRequest{
		Query: query,
		Limit: c.QueryInt("limit", 0),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetPlaceID godoc
// @Summary Get a place by zipcode and city name
// @Tags Places
// @Produce json
// @Param zipcode path string true "Zipcode"
// @Param city path string true "City name (URL-encoded)"
// @Success 200 {object} domain.Place
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/placeid/{zipcode}/{city} [get]
func (h *PlaceHandler) GetPlaceID(c *fiber.Ctx) error {
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil {
		city = c.Params("city")
	}

	req := dto.PlaceIDRequest{
		Zipcode: c.Params("zipcode"),
		City:    city,
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	place, err := h.placeUC.GetByZipcodeAndName(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(place)
}

// GetByID godoc
// @Summary Get a place by ID
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} domain.Place
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/place/{id} [get]
func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	place, err := h.placeUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(place)
}
