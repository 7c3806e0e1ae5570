package main

import (
	"os"
	"os/signal"
	"syscall"

	"gestor-turnos/internal/config"
	"gestor-turnos/internal/handler"
	"gestor-turnos/internal/repository"
	"gestor-turnos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// SQLite needs the pragma per connection.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	usuarioRepo, err := repository.NewGormUsuarioRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create usuario repository")
	}
	rolRepo, err := repository.NewGormRolRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create rol repository")
	}
	turnoRepo, err := repository.NewGormTurnoRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create turno repository")
	}
	festivoRepo, err := repository.NewGormFestivoRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create festivo repository")
	}
	ausenciaRepo, err := repository.NewGormAusenciaRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create ausencia repository")
	}

	usuarioService := service.NewUsuarioService(usuarioRepo, rolRepo)
	turnoService := service.NewTurnoService(turnoRepo, usuarioRepo, ausenciaRepo)
	festivoService := service.NewFestivoService(festivoRepo)
	reporteService := service.NewReporteService(usuarioRepo, rolRepo, turnoRepo, festivoService)

	app := fiber.New(fiber.Config{
		AppName: "gestor-turnos",
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(handler.RequestLogger())

	h := handler.NewHandler(usuarioService, turnoService, festivoService, reporteService, rolRepo)
	h.RegistrarRutas(app)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Puerto); err != nil {
			logrus.Fatal("Server stopped:", err)
		}
	}()

	logrus.Infof("Server started on port %s. Press Ctrl+C to stop.", cfg.Puerto)
	<-stop

	if err := app.Shutdown(); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
