package user

import (
	"errors"
	"log"

	"backend-wanderwise/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/profile", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		u, err := svc.Profile(c.Context(), claims.UID)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found in database")
		}
		if err != nil {
			log.Printf("fetch profile %s: %v", claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user profile")
		}
		// The verified-email gate applies only to the read path.
		if !claims.EmailVerified {
			return fiber.NewError(fiber.StatusForbidden, "Email not verified. Please verify your email.")
		}
		return c.JSON(u)
	})

	r.Post("/profile", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		var body struct {
			DisplayName string `json:"displayName"`
			Email       string `json:"email"`
			PhotoURL    string `json:"photoURL"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		input := User{
			FirebaseUID: claims.UID,
			Email:       fallback(body.Email, claims.Email),
			DisplayName: fallback(body.DisplayName, claims.Name),
			PhotoURL:    fallback(body.PhotoURL, claims.Picture),
		}

		u, err := svc.CreateProfile(c.Context(), input)
		if errors.Is(err, ErrAlreadyExists) {
			return fiber.NewError(fiber.StatusBadRequest, "User profile already exists")
		}
		if errors.Is(err, ErrValidation) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			log.Printf("create profile %s: %v", claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user profile")
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	})

	r.Put("/profile", authMiddleware, func(c *fiber.Ctx) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		var update Update
		if err := c.BodyParser(&update); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		u, err := svc.UpdateProfile(c.Context(), claims.UID, update)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		if err != nil {
			log.Printf("update profile %s: %v", claims.UID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user profile")
		}
		return c.JSON(u)
	})
}

func fallback(v, alt string) string {
	if v != "" {
		return v
	}
	return alt
}
