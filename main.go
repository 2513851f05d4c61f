package main

import (
	"context"

	"github.com/bvtech/attendance-server/config"
	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/routes"
	"github.com/bvtech/attendance-server/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Employee{}, &models.Attendance{}, &models.Sequence{})

	// Admin role is never set through the API; it is seeded from config.
	if err := repository.SeedAdmins(context.Background(), db, cfg.AdminEmails); err != nil {
		utils.Sugar.Fatalf("failed to seed admin roles: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
