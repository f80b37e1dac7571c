// @title Repositório de Questões API
// @version 1.0
// @description Pastas, provas e questões do banco de questões.

// @host localhost:3000
// @BasePath /api

package main

import (
	"flag"
	"log"
	"os"

	"github.com/Riaraujo/testecrud/internal/app"
	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	driver := flag.String("driver", "", "database driver override: mongo, mysql or memory")
	seed := flag.Bool("seed", false, "load the sample pastas, provas and questoes at startup")
	flag.Parse()

	if *driver != "" {
		os.Setenv("DATABASE_DRIVER", *driver)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed {
		cfg.Database.Seed = true
	}

	application := app.NewApp(cfg)
	defer logger.Sync()

	application.Run()
}
