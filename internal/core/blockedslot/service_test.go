package blockedslot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type stubIDGenerator struct {
	sequence int
}

func (g *stubIDGenerator) NewID() string {
	g.sequence++
	return fmt.Sprintf("slot-%d", g.sequence)
}

type fakeTenantDirectory struct {
	tenants map[string]bool
	err     error
}

func (d *fakeTenantDirectory) TenantExists(_ context.Context, tenantID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.tenants[tenantID], nil
}

type fakeSlotRepo struct {
	slots     []*BlockedSlot
	createErr error
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *BlockedSlot) (*BlockedSlot, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.slots = append(r.slots, slot)
	return slot, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id string) error {
	for i, slot := range r.slots {
		if slot.ID() == id {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSlotRepo) FindByID(_ context.Context, id string) (*BlockedSlot, error) {
	for _, slot := range r.slots {
		if slot.ID() == id {
			return slot, nil
		}
	}
	return nil, ErrBlockedSlotNotFound
}

func (r *fakeSlotRepo) FindByTenantID(_ context.Context, tenantID string) ([]*BlockedSlot, error) {
	result := make([]*BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() == tenantID {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) FindByStaffUserID(_ context.Context, staffUserID, tenantID string) ([]*BlockedSlot, error) {
	result := make([]*BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() != tenantID {
			continue
		}
		sid := slot.StaffUserID()
		if sid == nil || *sid != staffUserID {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func (r *fakeSlotRepo) FindByTimeRange(_ context.Context, tenantID string, startTime, endTime time.Time, staffUserID *string) ([]*BlockedSlot, error) {
	result := make([]*BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() != tenantID {
			continue
		}
		if staffUserID != nil && !slot.AppliesToStaff(*staffUserID) {
			continue
		}
		if !slot.Overlaps(startTime, endTime) {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func newTestService(repo *fakeSlotRepo, tenants *fakeTenantDirectory, now time.Time) *Service {
	return NewService(repo, tenants, &stubIDGenerator{}, &stubClock{now: now}, nil)
}

func knownTenants(ids ...string) *fakeTenantDirectory {
	d := &fakeTenantDirectory{tenants: make(map[string]bool)}
	for _, id := range ids {
		d.tenants[id] = true
	}
	return d
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 10, hour, minute, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_CreateBlockedSlot_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, knownTenants("tenant-1"), now)

	created, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    " tenant-1 ",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
		Reason:      strPtr(" maintenance "),
	})
	if err != nil {
		t.Fatalf("CreateBlockedSlot returned error: %v", err)
	}

	if created.ID() != "slot-1" {
		t.Fatalf("expected generated id slot-1, got %s", created.ID())
	}
	if created.TenantID() != "tenant-1" {
		t.Fatalf("expected normalized tenant id, got %s", created.TenantID())
	}
	if created.Reason() == nil || *created.Reason() != "maintenance" {
		t.Fatalf("expected trimmed reason, got %+v", created.Reason())
	}
	if !created.CreatedAt().Equal(now) || !created.UpdatedAt().Equal(now) {
		t.Fatal("expected timestamps to use clock now")
	}
	if len(repo.slots) != 1 {
		t.Fatalf("expected 1 persisted slot, got %d", len(repo.slots))
	}
}

func TestService_CreateBlockedSlot_TenantNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants(), time.Now().UTC())

	_, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:  "tenant-missing",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	})
	if !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatal("nothing must be persisted when the tenant is missing")
	}
}

func TestService_CreateBlockedSlot_ConflictSameStaff(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())

	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 30),
		EndTime:     at(10, 30),
	})
	if !errors.Is(err, ErrOverlappingSlot) {
		t.Fatalf("expected ErrOverlappingSlot, got %v", err)
	}
	if len(repo.slots) != 1 {
		t.Fatalf("conflicting slot must not be persisted, got %d slots", len(repo.slots))
	}

	// 別スタッフであれば同じ時間帯でも作成できます。
	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-2"),
		StartTime:   at(9, 30),
		EndTime:     at(10, 30),
	}); err != nil {
		t.Fatalf("expected creation for another staff to succeed, got %v", err)
	}
}

func TestService_CreateBlockedSlot_GeneralBlockConflicts(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())

	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:  "tenant-1",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 30),
		EndTime:     at(10, 30),
	})
	if !errors.Is(err, ErrOverlappingSlot) {
		t.Fatalf("expected general block to conflict with staff slot, got %v", err)
	}
}

func TestService_CreateBlockedSlot_TouchingWindowsDoNotConflict(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())

	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(10, 0),
		EndTime:     at(11, 0),
	}); err != nil {
		t.Fatalf("expected adjacent window to be accepted, got %v", err)
	}
}

func TestService_CreateBlockedSlot_BlankStaffUserID(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())

	// 空のスタッフ ID を受け入れると全体ブロックに化けてしまうため拒否します。
	_, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("   "),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
	})
	if !errors.Is(err, ErrInvalidStaffUserID) {
		t.Fatalf("expected ErrInvalidStaffUserID, got %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatal("nothing must be persisted for a blank staff user id")
	}

	// 全体ブロックとして登録されていないため、他スタッフの同時間帯は作成できます。
	if _, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-2"),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
	}); err != nil {
		t.Fatalf("expected creation for another staff to succeed, got %v", err)
	}
}

func TestService_CreateBlockedSlot_InvalidTimeRange(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())

	_, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:  "tenant-1",
		StartTime: at(10, 0),
		EndTime:   at(10, 0),
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatal("invalid slot must not be persisted")
	}
}

func TestService_DeleteBlockedSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-a"), time.Now().UTC())

	created, err := svc.CreateBlockedSlot(context.Background(), CreateBlockedSlotInput{
		TenantID:  "tenant-a",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 他テナントの ID では削除できず、ブロックは残ります。
	err = svc.DeleteBlockedSlot(context.Background(), DeleteBlockedSlotInput{ID: created.ID(), TenantID: "tenant-b"})
	if !errors.Is(err, ErrSlotTenantMismatch) {
		t.Fatalf("expected ErrSlotTenantMismatch, got %v", err)
	}
	if len(repo.slots) != 1 {
		t.Fatal("slot must remain after an unauthorized delete attempt")
	}

	err = svc.DeleteBlockedSlot(context.Background(), DeleteBlockedSlotInput{ID: created.ID(), TenantID: ""})
	if !errors.Is(err, ErrSlotTenantMismatch) {
		t.Fatalf("expected empty tenant id to mismatch, got %v", err)
	}

	if err := svc.DeleteBlockedSlot(context.Background(), DeleteBlockedSlotInput{ID: created.ID(), TenantID: "tenant-a"}); err != nil {
		t.Fatalf("DeleteBlockedSlot returned error: %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatal("slot must be removed")
	}

	// 削除済み ID の再削除は not found になります。
	err = svc.DeleteBlockedSlot(context.Background(), DeleteBlockedSlotInput{ID: created.ID(), TenantID: "tenant-a"})
	if !errors.Is(err, ErrBlockedSlotNotFound) {
		t.Fatalf("expected ErrBlockedSlotNotFound, got %v", err)
	}
}

func TestService_DeleteBlockedSlot_BlankID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeSlotRepo{}, knownTenants(), time.Now().UTC())

	// 空の ID は存在しないブロックの参照と同じく not found です。
	err := svc.DeleteBlockedSlot(context.Background(), DeleteBlockedSlotInput{ID: "  ", TenantID: "tenant-a"})
	if !errors.Is(err, ErrBlockedSlotNotFound) {
		t.Fatalf("expected ErrBlockedSlotNotFound, got %v", err)
	}
}

func TestService_ListBlockedSlots_Dispatch(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())
	ctx := context.Background()

	mustCreate := func(staff *string, start, end time.Time) *BlockedSlot {
		t.Helper()
		created, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
			TenantID:    "tenant-1",
			StaffUserID: staff,
			StartTime:   start,
			EndTime:     end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return created
	}

	general := mustCreate(nil, at(8, 0), at(9, 0))
	first := mustCreate(strPtr("staff-1"), at(9, 0), at(10, 0))
	second := mustCreate(strPtr("staff-2"), at(11, 0), at(12, 0))

	// テナントのみ指定: 登録順で全件。
	all, err := svc.ListBlockedSlots(ctx, ListBlockedSlotsInput{TenantID: "tenant-1"})
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}
	if len(all) != 3 || all[0].ID() != general.ID() || all[1].ID() != first.ID() || all[2].ID() != second.ID() {
		t.Fatalf("expected insertion order listing, got %d slots", len(all))
	}

	// スタッフのみ指定: 完全一致。全体ブロックは含まれません。
	staffOnly, err := svc.ListBlockedSlots(ctx, ListBlockedSlotsInput{TenantID: "tenant-1", StaffUserID: strPtr("staff-1")})
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}
	if len(staffOnly) != 1 || staffOnly[0].ID() != first.ID() {
		t.Fatalf("expected exact staff match only, got %d slots", len(staffOnly))
	}

	// 期間 + スタッフ指定: 重なり判定で、全体ブロックも含まれます。
	ranged, err := svc.ListBlockedSlots(ctx, ListBlockedSlotsInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   timePtr(at(8, 30)),
		EndTime:     timePtr(at(9, 30)),
	})
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}
	if len(ranged) != 2 || ranged[0].ID() != general.ID() || ranged[1].ID() != first.ID() {
		t.Fatalf("expected general + staff slots, got %d slots", len(ranged))
	}
}

func TestService_ListBlockedSlots_BlankTenant(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeSlotRepo{}, knownTenants(), time.Now().UTC())

	if _, err := svc.ListBlockedSlots(context.Background(), ListBlockedSlotsInput{TenantID: " "}); !errors.Is(err, ErrInvalidTenantID) {
		t.Fatalf("expected ErrInvalidTenantID, got %v", err)
	}
}

func TestService_ListAndFind_DivergentTimeSemantics(t *testing.T) {
	t.Parallel()

	// 同じデータに対して List は重なり、Find は包含で判定することを固定します。
	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())
	ctx := context.Background()

	created, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
		TenantID:  "tenant-1",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// [09:30, 10:30) はブロックと重なるが、ブロックを包含しません。
	window := ListBlockedSlotsInput{
		TenantID:  "tenant-1",
		StartTime: timePtr(at(9, 30)),
		EndTime:   timePtr(at(10, 30)),
	}

	listed, err := svc.ListBlockedSlots(ctx, window)
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID() != created.ID() {
		t.Fatalf("List must return the overlapping slot, got %d slots", len(listed))
	}

	found, err := svc.FindBlockedSlots(ctx, FindBlockedSlotsInput{
		TenantID:  window.TenantID,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
	})
	if err != nil {
		t.Fatalf("FindBlockedSlots returned error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("Find must exclude a slot that is not fully contained, got %d slots", len(found))
	}

	// ブロックを完全に含む期間であれば両方が返します。
	wide := FindBlockedSlotsInput{
		TenantID:  "tenant-1",
		StartTime: timePtr(at(8, 0)),
		EndTime:   timePtr(at(11, 0)),
	}
	foundWide, err := svc.FindBlockedSlots(ctx, wide)
	if err != nil {
		t.Fatalf("FindBlockedSlots returned error: %v", err)
	}
	if len(foundWide) != 1 {
		t.Fatalf("Find must return a fully contained slot, got %d slots", len(foundWide))
	}
}

func TestService_FindBlockedSlots_StaffExactMatch(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-1"), time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
		TenantID:  "tenant-1",
		StartTime: at(8, 0),
		EndTime:   at(9, 0),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
		TenantID:    "tenant-1",
		StaffUserID: strPtr("staff-1"),
		StartTime:   at(9, 0),
		EndTime:     at(10, 0),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := svc.FindBlockedSlots(ctx, FindBlockedSlotsInput{TenantID: "tenant-1", StaffUserID: strPtr("staff-1")})
	if err != nil {
		t.Fatalf("FindBlockedSlots returned error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("Find with staff filter must exclude general blocks, got %d slots", len(found))
	}
	sid := found[0].StaffUserID()
	if sid == nil || *sid != "staff-1" {
		t.Fatalf("unexpected staff user id: %+v", sid)
	}
}

func TestService_EndToEndScenario(t *testing.T) {
	t.Parallel()

	repo := &fakeSlotRepo{}
	svc := newTestService(repo, knownTenants("tenant-t"), time.Now().UTC())
	ctx := context.Background()

	first, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
		TenantID:    "tenant-t",
		StaffUserID: strPtr("staff-s1"),
		StartTime:   time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.CreateBlockedSlot(ctx, CreateBlockedSlotInput{
		TenantID:    "tenant-t",
		StaffUserID: strPtr("staff-s2"),
		StartTime:   time.Date(2025, 10, 11, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 10, 11, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := svc.ListBlockedSlots(ctx, ListBlockedSlotsInput{TenantID: "tenant-t", StaffUserID: strPtr("staff-s1")})
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID() != first.ID() {
		t.Fatalf("expected only the staff-s1 slot, got %d slots", len(listed))
	}

	found, err := svc.FindBlockedSlots(ctx, FindBlockedSlotsInput{
		TenantID:  "tenant-t",
		StartTime: timePtr(time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)),
		EndTime:   timePtr(time.Date(2025, 10, 12, 23, 59, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("FindBlockedSlots returned error: %v", err)
	}
	if len(found) != 2 || found[0].ID() != first.ID() || found[1].ID() != second.ID() {
		t.Fatalf("expected both slots contained in the window, got %d slots", len(found))
	}
}
