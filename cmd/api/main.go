package main

import (
	"fmt"
	"log"
	"os"

	_ "vaquinha/docs"
	"vaquinha/internal/adapter/http/routes"
	"vaquinha/internal/infrastructure/config"
	"vaquinha/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// @title           Vaquinha API
// @version         1.0
// @description     Pooled bill splitting with Mercado Pago payment reconciliation, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /

func main() {
	app := &cli.App{
		Name:  "vaquinha",
		Usage: "Pooled bill splitting service with Mercado Pago reconciliation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "HTTP port"},
			&cli.StringFlag{Name: "app-url", Aliases: []string{"u"}, Usage: "Public base URL used in notification and back URLs"},
			&cli.StringFlag{Name: "storage", Aliases: []string{"s"}, Usage: "Storage backend (dynamodb or memory)"},
			&cli.StringFlag{Name: "dynamodb-endpoint", Aliases: []string{"e"}, Usage: "DynamoDB endpoint override"},
			&cli.IntFlag{Name: "free-pool-limit", Usage: "Pools a free user may create"},
			&cli.DurationFlag{Name: "lookup-timeout", Usage: "Mercado Pago payment lookup timeout"},
			&cli.BoolFlag{Name: "mock-gateway", Aliases: []string{"m"}, Usage: "Use the in-process Mercado Pago mock"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := routes.Run(c.Context, cfg, zl); err != nil {
		zl.Error("server stopped", zap.Error(err))
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// loadConfig applies flag overrides on top of the environment before
// validating, so flags can fill required values.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.FromEnv()

	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("app-url") {
		cfg.AppURL = c.String("app-url")
	}
	if c.IsSet("storage") {
		cfg.StorageBackend = c.String("storage")
	}
	if c.IsSet("dynamodb-endpoint") {
		cfg.DynamoDBEndpoint = c.String("dynamodb-endpoint")
	}
	if c.IsSet("free-pool-limit") {
		cfg.FreePoolLimit = c.Int("free-pool-limit")
	}
	if c.IsSet("lookup-timeout") {
		cfg.MercadoPagoLookupTimeout = c.Duration("lookup-timeout")
	}
	if c.IsSet("mock-gateway") {
		cfg.PaymentGatewayMock = c.Bool("mock-gateway")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
