package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner_backend/internals/configs"
	database "planner_backend/internals/databases"
	"planner_backend/internals/features/planner/integrity/scheduler"
	routes "planner_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	// 🔌 DB connect + schema
	if err := database.ConnectDB(cfg); err != nil {
		log.Fatalf("[DB] %v", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("[DB] %v", err)
	}

	// ⏱ scheduler setelah DB siap
	reaper := scheduler.StartOrphanReaper(database.DB, scheduler.ReaperConfig{
		CronSchedule: cfg.ReaperSchedule,
		DryRun:       cfg.ReaperDryRun,
	})

	app := routes.NewApp(cfg, database.DB)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, server, lalu tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[SHUTDOWN] stopping...")

	if reaper != nil {
		<-reaper.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(database.DB)
}
