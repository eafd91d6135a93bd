package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/Uilsaun/GitResaHotel/internal/auth"
	"github.com/Uilsaun/GitResaHotel/internal/booking"
	"github.com/Uilsaun/GitResaHotel/internal/database"
	"github.com/Uilsaun/GitResaHotel/internal/env"
	"github.com/Uilsaun/GitResaHotel/internal/session"
	"github.com/Uilsaun/GitResaHotel/internal/version"
)

var (
	_cfgFile     = flag.String("cfg", "", "path to config file")
	_showVersion = flag.Bool("version", false, "display version and exit")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	bcryptCost int
}

type application struct {
	config       config
	db           *database.DB
	logger       *slog.Logger
	auth         authService
	booking      bookingEngine
	sessions     *session.Manager
	reservations reservationStore
	wg           sync.WaitGroup
}

func run(logger *slog.Logger) error {
	if *_showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 3000)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.bcryptCost = env.GetInt("BCRYPT_COST", auth.DefaultHashCost)

	db, err := database.New(cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	clientDAO := database.NewClientDAO(logger, db)
	chambreDAO := database.NewChambreDAO(logger, db)
	reservationDAO := database.NewReservationDAO(logger, db)

	app := &application{
		config:       cfg,
		db:           db,
		logger:       logger,
		auth:         auth.NewService(logger, clientDAO, auth.NewBcryptHasher(cfg.bcryptCost)),
		booking:      booking.NewEngine(logger, chambreDAO),
		sessions:     session.NewManager(),
		reservations: reservationDAO,
	}

	return app.serveHTTP()
}
