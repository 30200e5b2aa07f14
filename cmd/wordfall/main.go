package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordfall/internal/audio"
	"wordfall/internal/config"
	"wordfall/internal/game"
	"wordfall/internal/handler"
	"wordfall/internal/repository"
	"wordfall/internal/repository/embedded"
	"wordfall/internal/repository/postgres"
	"wordfall/internal/service"

	"github.com/gdamore/tcell/v2"
	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; the terminal owns stdout while the game runs
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordfall",
		zap.String("word_source", cfg.WordSource),
		zap.Int("target_score", cfg.TargetScore),
	)

	// Initialize repositories
	repos := []repository.WordBankRepository{embedded.NewBankRepo()}

	if cfg.UsePostgres() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		repos = append(repos, postgres.NewWordRepo(db, cfg.UserID))
	}

	// Load word banks
	bankService := service.NewWordBankService(logger, repos...)
	banks, err := bankService.Banks()
	if err != nil {
		logger.Fatal("Failed to load word banks", zap.Error(err))
	}
	if len(banks) == 0 {
		logger.Fatal("No playable word banks")
	}
	for _, b := range banks {
		logger.Info("Word bank loaded", zap.String("bank", b.Key), zap.Int("words", b.Len()))
	}

	// Sound
	var sounds game.Sounds
	if cfg.Sound {
		player := audio.NewPlayer(logger)
		defer player.Close()
		if player.Ready() {
			sounds = player
		}
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("Failed to create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("Failed to initialize screen", zap.Error(err))
	}

	frames := game.NewFrameQueue()
	term := handler.NewTerminal(screen, frames, banks, handler.Settings{
		FPS:        cfg.FPS,
		Difficulty: cfg.Difficulty,
		WordBank:   cfg.WordBank,
	}, logger)
	defer term.Close()

	ctrl := game.NewController(game.Options{
		Surface:     term,
		Frames:      frames,
		Banks:       banks,
		TargetScore: cfg.TargetScore,
		Sounds:      sounds,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:      logger,
	})
	term.Attach(ctrl)

	// Stop on interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil {
		logger.Error("Terminal loop failed", zap.Error(err))
	}

	logger.Info("Wordfall stopped")
}

// newLogger builds a production logger writing to path
func newLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 5
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations creates the saved-words table if needed.
// A separate migrations table keeps this independent of other tools sharing the database.
func runMigrations(db *sql.DB, path string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{
		MigrationsTable: "wordfall_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
