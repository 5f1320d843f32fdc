package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		tenantSvc tenant.UseCase
		slotSvc   blockedslot.UseCase
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		tenantRepo := memory.NewTenantRepository()
		slotRepo := memory.NewBlockedSlotRepository()
		tenantSvc = tenant.NewService(tenantRepo, nil)
		slotSvc = blockedslot.NewService(slotRepo, tenantRepo, nil, nil, nil)
		log.Printf("using in-memory storage; state is not persisted")
	default:
		dbPool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to initialize database pool: %v", err)
		}
		defer dbPool.Close()

		tx := pg.NewTransactionManager(dbPool)
		tenantRepo := postgres.NewTenantRepository(dbPool)
		slotRepo := postgres.NewBlockedSlotRepository(dbPool)
		tenantSvc = tenant.NewService(tenantRepo, nil)
		slotSvc = blockedslot.NewService(slotRepo, tenantRepo, nil, nil, tx)
	}

	grpcServer := server.New(cfg.Server.ListenAddr, tenantSvc, slotSvc)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
