//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	migrationsDir = "assets/migrations"
	seedsDir      = "assets/seeds"
)

func TestBlockedSlotLifecycleIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	if err := applySeeds(cfg.Database.DSN(), seedsDir); err != nil {
		t.Fatalf("failed to apply seeds: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	txManager := pg.NewTransactionManager(pool)
	tenantRepo := repo.NewTenantRepository(pool)
	slotRepo := repo.NewBlockedSlotRepository(pool)

	tenantSvc := tenant.NewService(tenantRepo, stubClock{now: time.Now().UTC()})
	slotSvc := blockedslot.NewService(slotRepo, tenantRepo, nil, stubClock{now: time.Now().UTC()}, txManager)

	owner, err := tenantSvc.CreateTenant(ctx, tenant.CreateTenantInput{Name: "Integration Tenant"})
	if err != nil {
		t.Fatalf("CreateTenant error: %v", err)
	}

	start := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	created, err := slotSvc.CreateBlockedSlot(ctx, blockedslot.CreateBlockedSlotInput{
		TenantID:  owner.ID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("CreateBlockedSlot error: %v", err)
	}

	// 同一テナントの重なる時間帯は拒否されます。
	if _, err := slotSvc.CreateBlockedSlot(ctx, blockedslot.CreateBlockedSlotInput{
		TenantID:  owner.ID,
		StartTime: start.Add(30 * time.Minute),
		EndTime:   end.Add(30 * time.Minute),
	}); !errors.Is(err, blockedslot.ErrOverlappingSlot) {
		t.Fatalf("expected ErrOverlappingSlot, got %v", err)
	}

	// 端点が接するだけの時間帯は重ならないため作成できます。
	adjacent, err := slotSvc.CreateBlockedSlot(ctx, blockedslot.CreateBlockedSlotInput{
		TenantID:  owner.ID,
		StartTime: end,
		EndTime:   end.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateBlockedSlot (adjacent) error: %v", err)
	}

	slots, err := slotSvc.ListBlockedSlots(ctx, blockedslot.ListBlockedSlotsInput{TenantID: owner.ID})
	if err != nil {
		t.Fatalf("ListBlockedSlots error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}

	windowStart := start.Add(-time.Hour)
	windowEnd := end
	contained, err := slotSvc.FindBlockedSlots(ctx, blockedslot.FindBlockedSlotsInput{
		TenantID:  owner.ID,
		StartTime: &windowStart,
		EndTime:   &windowEnd,
	})
	if err != nil {
		t.Fatalf("FindBlockedSlots error: %v", err)
	}
	if len(contained) != 1 || contained[0].ID() != created.ID() {
		t.Fatalf("expected only the first slot to be contained, got %d slots", len(contained))
	}

	if err := slotSvc.DeleteBlockedSlot(ctx, blockedslot.DeleteBlockedSlotInput{ID: created.ID(), TenantID: owner.ID}); err != nil {
		t.Fatalf("DeleteBlockedSlot error: %v", err)
	}

	if _, err := slotRepo.FindByID(ctx, created.ID()); !errors.Is(err, blockedslot.ErrBlockedSlotNotFound) {
		t.Fatalf("expected ErrBlockedSlotNotFound, got %v", err)
	}

	if err := slotSvc.DeleteBlockedSlot(ctx, blockedslot.DeleteBlockedSlotInput{ID: created.ID(), TenantID: owner.ID}); !errors.Is(err, blockedslot.ErrBlockedSlotNotFound) {
		t.Fatalf("expected repeated delete to report missing slot, got %v", err)
	}

	if err := slotSvc.DeleteBlockedSlot(ctx, blockedslot.DeleteBlockedSlotInput{ID: adjacent.ID(), TenantID: owner.ID}); err != nil {
		t.Fatalf("DeleteBlockedSlot (adjacent) error: %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func applySeeds(dsn, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
