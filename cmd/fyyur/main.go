package main

import (
	"io"
	"log"
	"os"

	"github.com/lsurvila/FSND/config"
	"github.com/lsurvila/FSND/internal/fyyur/handler"
	"github.com/lsurvila/FSND/internal/fyyur/middleware"
	"github.com/lsurvila/FSND/internal/fyyur/models"
	"github.com/lsurvila/FSND/internal/fyyur/repository"
	"github.com/lsurvila/FSND/internal/fyyur/service"
	"github.com/lsurvila/FSND/pkg/database"
	"github.com/lsurvila/FSND/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load("5000", "fyyur")

	// Tee logs into the error log file alongside stderr.
	if logFile, err := os.OpenFile(cfg.ErrorLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	} else {
		log.Printf("could not open %s, logging to stderr only: %v", cfg.ErrorLog, err)
	}

	db := database.NewPostgresDB(cfg.DSN(), &models.Venue{}, &models.Artist{}, &models.Show{})

	// Listing announcements are optional: without a broker the service runs
	// the same, it just skips publishing.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	svc := service.NewFyyurService(venueRepo, artistRepo, showRepo, publisher)

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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "fyyur"})
	})

	handler.NewFyyurHandler(svc).RegisterRoutes(e)

	log.Printf("Fyyur starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
