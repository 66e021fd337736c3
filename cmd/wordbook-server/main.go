package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordbook/internal/auth"
	"github.com/at-ishikawa/wordbook/internal/bootstrap"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/logging"
	"github.com/at-ishikawa/wordbook/internal/server"
	"github.com/at-ishikawa/wordbook/internal/transfer"
	"github.com/at-ishikawa/wordbook/internal/user"
	"github.com/at-ishikawa/wordbook/internal/word"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var debug bool

	cmd := &cobra.Command{
		Use:           "wordbook-server",
		Short:         "Serve the wordbook REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configFile, debug)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", os.Getenv("WORDBOOK_CONFIG"), "Path to the configuration file")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

func run(ctx context.Context, configFile string, debug bool) error {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app := bootstrap.New(logger, cfg.Server.ShutdownTimeout())
	app.AddShutdownHook("database", func(ctx context.Context) error {
		return db.Close()
	})

	srv, err := newServer(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		return err
	}
	// Registered before Run: shutdown only runs the hooks present when it starts.
	app.AddShutdownHook("http", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		if err := database.Ping(ctx, db, cfg.Database.ConnectRetries, logger); err != nil {
			return err
		}
		if cfg.Database.AutoMigrate {
			applied, err := database.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			logger.Info("database schema is up to date", zap.Strings("files", applied))
		}

		logger.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("version", server.Version),
			zap.String("database_driver", cfg.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ListenAndServe() > %w", err)
		}
		return nil
	})
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newServer(cfg *config.Config, db *sqlx.DB, logger *zap.Logger) (*http.Server, error) {
	handler, err := newHandler(cfg, db, logger)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout(),
	}, nil
}

func newHandler(cfg *config.Config, db *sqlx.DB, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenIssuer(auth.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.TokenTTL(),
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.NewTokenIssuer() > %w", err)
	}

	dictionaries := dictionary.NewService(dictionary.NewDBDictionaryRepository(db))
	words := word.NewDBWordRepository(db)
	srv := server.New(server.Services{
		Users:        user.NewService(user.NewDBUserRepository(db), auth.NewBcryptHasher(cfg.Auth.BcryptCost)),
		Tokens:       tokens,
		Dictionaries: dictionaries,
		Words:        word.NewService(words, dictionaries),
		Transfer:     transfer.NewService(words, dictionaries),
		Database:     db,
	}, logger, cfg.Server.CORS.AllowedOrigins)
	return srv.Handler(), nil
}
