package server

import (
	"strings"

	"backend-wanderwise/internal/auth"
	"backend-wanderwise/internal/cities"
	"backend-wanderwise/internal/config"
	"backend-wanderwise/internal/trip"
	"backend-wanderwise/internal/user"
	"backend-wanderwise/internal/weather"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	geoDBBaseURL       = "https://wft-geo-db.p.rapidapi.com"
	tripAdvisorBaseURL = "https://tripadvisor1.p.rapidapi.com"
	openWeatherBaseURL = "https://api.openweathermap.org"
)

type Server struct {
	App *fiber.App
	Cfg config.Config
}

func NewServer(cfg config.Config, mongoClient *mongo.Client, verifier auth.TokenVerifier) *Server {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins(), ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	s := &Server{App: app, Cfg: cfg}
	registerRoutes(s, mongoClient, verifier)
	return s
}

func registerRoutes(s *Server, mongoClient *mongo.Client, verifier auth.TokenVerifier) {
	api := s.App.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "WanderWise API is running"})
	})

	citySvc := cities.NewService(
		cities.NewGeoDB(geoDBBaseURL, s.Cfg.RapidAPIKey),
		cities.NewTripAdvisor(tripAdvisorBaseURL, s.Cfg.RapidAPIKey),
	)
	cities.RegisterRoutes(api.Group("/cities"), citySvc)

	weather.RegisterRoutes(api.Group("/weather"),
		weather.NewOpenWeather(openWeatherBaseURL, s.Cfg.OpenWeatherAPIKey))

	authMiddleware := auth.Middleware(verifier)

	database := mongoClient.Database(s.Cfg.MongoDB)
	userStore := user.NewStore(database)
	userSvc := user.NewService(userStore)
	user.RegisterRoutes(api.Group("/users"), userSvc, authMiddleware)

	tripSvc := trip.NewService(trip.NewStore(database), userStore)
	trip.RegisterRoutes(api.Group("/trips"), tripSvc, authMiddleware)
}
