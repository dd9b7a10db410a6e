package main

import (
	"log"

	"github.com/lsurvila/FSND/config"
	"github.com/lsurvila/FSND/internal/trivia/handler"
	"github.com/lsurvila/FSND/internal/trivia/middleware"
	"github.com/lsurvila/FSND/internal/trivia/models"
	"github.com/lsurvila/FSND/internal/trivia/repository"
	"github.com/lsurvila/FSND/internal/trivia/service"
	"github.com/lsurvila/FSND/pkg/database"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load("5001", "trivia")

	db := database.NewPostgresDB(cfg.DSN(), &models.Category{}, &models.Question{})

	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	svc := service.NewTriviaService(questionRepo, categoryRepo)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.CORSHeaders)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "trivia"})
	})

	handler.NewTriviaHandler(svc).RegisterRoutes(e)

	log.Printf("Trivia API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
