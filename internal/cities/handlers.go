package cities

import (
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/search", func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if utf8.RuneCountInString(q) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Query must be at least 2 characters long")
		}
		results, err := svc.Search(c.Context(), q)
		if errors.Is(err, ErrRateLimited) {
			return fiber.NewError(fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		}
		if err != nil {
			log.Printf("search cities %q: %v", q, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to search cities")
		}
		return c.JSON(results)
	})

	r.Get("/insights", func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "City parameter is required")
		}
		insights, err := svc.Insights(c.Context(), city)
		if errors.Is(err, ErrCityNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		if err != nil {
			log.Printf("travel insights for %q: %v", city, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch travel insights")
		}
		return c.JSON(insights)
	})
}
