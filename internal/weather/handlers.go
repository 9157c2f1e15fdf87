package weather

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, ow *OpenWeatherClient) {
	r.Get("/city", func(c *fiber.Ctx) error {
		city := c.Query("city")
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "City parameter is required")
		}
		report, err := ow.ByCity(c.Context(), city)
		if errors.Is(err, ErrCityNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		if err != nil {
			log.Printf("weather by city %q: %v", city, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather data")
		}
		return c.JSON(report)
	})

	r.Get("/current", func(c *fiber.Ctx) error {
		latStr, lngStr := c.Query("lat"), c.Query("lng")
		if latStr == "" || lngStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Latitude and longitude parameters are required")
		}
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Latitude and longitude parameters are required")
		}
		report, err := ow.ByCoordinates(c.Context(), lat, lng)
		if err != nil {
			log.Printf("weather at %s,%s: %v", latStr, lngStr, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch current weather data")
		}
		return c.JSON(report)
	})
}
