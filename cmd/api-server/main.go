package main

import (
	"fmt"
	"os"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/database"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/log"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	appProvider := InitServer(cfg)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and seed initial data",
				Action: func(ctx *cli.Context) error {
					return database.Migrate(database.NewDB(cfg))
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
