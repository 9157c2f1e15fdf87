package trip

import (
	"errors"
	"log"

	"backend-wanderwise/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}
		trips, err := svc.List(c.Context(), claims.UID)
		if err != nil {
			log.Printf("list trips for %s: %v", claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch trips")
		}
		return c.JSON(trips)
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}
		t, err := svc.Get(c.Context(), claims.UID, c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}
		if err != nil {
			log.Printf("fetch trip %s for %s: %v", c.Params("id"), claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch trip")
		}
		return c.JSON(t)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}
		var input Trip
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		t, err := svc.Create(c.Context(), claims.UID, input)
		if errors.Is(err, ErrValidation) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			log.Printf("create trip for %s: %v", claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create trip")
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}
		var input Trip
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		t, err := svc.Update(c.Context(), claims.UID, c.Params("id"), input)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}
		if errors.Is(err, ErrValidation) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			log.Printf("update trip %s for %s: %v", c.Params("id"), claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update trip")
		}
		return c.JSON(t)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}
		err := svc.Delete(c.Context(), claims.UID, c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}
		if err != nil {
			log.Printf("delete trip %s for %s: %v", c.Params("id"), claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete trip")
		}
		return c.JSON(fiber.Map{"message": "Trip deleted successfully"})
	})
}
