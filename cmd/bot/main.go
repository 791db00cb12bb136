package main

import (
	"context"
	"log"

	"devlabs-intake-be/internal/bootstrap"
	"devlabs-intake-be/internal/config"
	"devlabs-intake-be/internal/model"
	"devlabs-intake-be/internal/server"
	"devlabs-intake-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	if len(cfg.Intake.AdminIDs) == 0 {
		log.Println("[WARN] ADMIN_IDS is empty: routed requests have no recipients")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Project{}, &model.Preference{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	// In-flight sessions reset to idle on restart; only the pending
	// message buffers survive in the database.
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start consumer pipeline: %v", err)
	}
	if container.IngressService != nil {
		go container.IngressService.Start()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
