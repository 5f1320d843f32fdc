package blockedslot

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validParams() NewBlockedSlotParams {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	return NewBlockedSlotParams{
		ID:        "slot-1",
		TenantID:  "tenant-1",
		StartTime: time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewBlockedSlot_Success(t *testing.T) {
	t.Parallel()

	params := validParams()
	staff := " staff-1 "
	reason := "  maintenance  "
	params.StaffUserID = &staff
	params.Reason = &reason

	slot, err := NewBlockedSlot(params)
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	if slot.ID() != "slot-1" || slot.TenantID() != "tenant-1" {
		t.Fatalf("unexpected identity: %s %s", slot.ID(), slot.TenantID())
	}
	if slot.StaffUserID() == nil || *slot.StaffUserID() != "staff-1" {
		t.Fatalf("expected trimmed staff user id, got %+v", slot.StaffUserID())
	}
	if slot.Reason() == nil || *slot.Reason() != "maintenance" {
		t.Fatalf("expected trimmed reason, got %+v", slot.Reason())
	}
	if slot.IsGeneral() {
		t.Fatal("slot with staff user id must not be general")
	}
}

func TestNewBlockedSlot_BlankTenantID(t *testing.T) {
	t.Parallel()

	params := validParams()
	params.TenantID = "   "

	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrInvalidTenantID) {
		t.Fatalf("expected ErrInvalidTenantID, got %v", err)
	}
}

func TestNewBlockedSlot_ValidationOrder(t *testing.T) {
	t.Parallel()

	// テナント ID と時間帯の両方が不正な場合、先に検証されるテナント ID のエラーが返ります。
	params := validParams()
	params.TenantID = ""
	params.EndTime = params.StartTime

	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrInvalidTenantID) {
		t.Fatalf("expected ErrInvalidTenantID to win, got %v", err)
	}
}

func TestNewBlockedSlot_TimeRangeBoundary(t *testing.T) {
	t.Parallel()

	params := validParams()
	params.EndTime = params.StartTime

	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange for zero-length interval, got %v", err)
	}

	params.EndTime = params.StartTime.Add(time.Minute)
	if _, err := NewBlockedSlot(params); err != nil {
		t.Fatalf("expected one-minute interval to be accepted, got %v", err)
	}
}

func TestNewBlockedSlot_ReasonLengthBoundary(t *testing.T) {
	t.Parallel()

	params := validParams()

	// 文字数はルーン単位で数えます。マルチバイト文字 500 字は許容されます。
	longOK := strings.Repeat("あ", MaxReasonLength)
	params.Reason = &longOK
	if _, err := NewBlockedSlot(params); err != nil {
		t.Fatalf("expected 500-character reason to be accepted, got %v", err)
	}

	tooLong := strings.Repeat("あ", MaxReasonLength+1)
	params.Reason = &tooLong
	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrReasonTooLong) {
		t.Fatalf("expected ErrReasonTooLong for 501 characters, got %v", err)
	}

	// 長さは与えられた文字列で数えるため、前後の空白で上限を超える入力も拒否されます。
	padded := " " + strings.Repeat("あ", MaxReasonLength) + " "
	params.Reason = &padded
	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrReasonTooLong) {
		t.Fatalf("expected ErrReasonTooLong for padded 502-character input, got %v", err)
	}
}

func TestNewBlockedSlot_DateConsistency(t *testing.T) {
	t.Parallel()

	params := validParams()
	params.UpdatedAt = params.CreatedAt.Add(-time.Second)

	if _, err := NewBlockedSlot(params); !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}
}

func TestNewBlockedSlot_NormalizesOptionalFields(t *testing.T) {
	t.Parallel()

	params := validParams()
	blank := "   "
	params.StaffUserID = &blank
	params.Reason = &blank

	slot, err := NewBlockedSlot(params)
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	if slot.StaffUserID() != nil {
		t.Fatalf("expected blank staff user id to normalize to nil, got %+v", slot.StaffUserID())
	}
	if slot.Reason() != nil {
		t.Fatalf("expected blank reason to normalize to nil, got %+v", slot.Reason())
	}
	if !slot.IsGeneral() {
		t.Fatal("slot without staff user id must be general")
	}
}

func TestBlockedSlot_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	params := validParams()
	staff := "staff-1"
	params.StaffUserID = &staff

	slot, err := NewBlockedSlot(params)
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	leaked := slot.StaffUserID()
	*leaked = "mutated"

	if *slot.StaffUserID() != "staff-1" {
		t.Fatal("mutating the returned pointer must not affect the entity")
	}
}

func TestBlockedSlot_Overlaps(t *testing.T) {
	t.Parallel()

	slot, err := NewBlockedSlot(validParams())
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	start := slot.StartTime()
	end := slot.EndTime()

	cases := []struct {
		name   string
		qStart time.Time
		qEnd   time.Time
		want   bool
	}{
		{"query inside block", start.Add(15 * time.Minute), end.Add(-15 * time.Minute), true},
		{"block inside query", start.Add(-time.Hour), end.Add(time.Hour), true},
		{"partial overlap at head", start.Add(-30 * time.Minute), start.Add(30 * time.Minute), true},
		{"partial overlap at tail", end.Add(-30 * time.Minute), end.Add(30 * time.Minute), true},
		{"touching at block start", start.Add(-time.Hour), start, false},
		{"touching at block end", end, end.Add(time.Hour), false},
		{"disjoint before", start.Add(-2 * time.Hour), start.Add(-time.Hour), false},
		{"disjoint after", end.Add(time.Hour), end.Add(2 * time.Hour), false},
	}

	for _, tc := range cases {
		if got := slot.Overlaps(tc.qStart, tc.qEnd); got != tc.want {
			t.Errorf("%s: expected %t, got %t", tc.name, tc.want, got)
		}
	}
}

func TestBlockedSlot_ContainedIn(t *testing.T) {
	t.Parallel()

	slot, err := NewBlockedSlot(validParams())
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	start := slot.StartTime()
	end := slot.EndTime()

	if !slot.ContainedIn(start, end) {
		t.Error("exact window must contain the block")
	}
	if !slot.ContainedIn(start.Add(-time.Hour), end.Add(time.Hour)) {
		t.Error("wider window must contain the block")
	}
	if slot.ContainedIn(start.Add(time.Minute), end) {
		t.Error("window starting after the block must not contain it")
	}
	if slot.ContainedIn(start, end.Add(-time.Minute)) {
		t.Error("window ending before the block must not contain it")
	}
}

func TestBlockedSlot_AppliesToStaff(t *testing.T) {
	t.Parallel()

	general, err := NewBlockedSlot(validParams())
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	if !general.AppliesToStaff("staff-1") || !general.AppliesToStaff("staff-2") {
		t.Error("general block must apply to every staff member")
	}

	params := validParams()
	staff := "staff-1"
	params.StaffUserID = &staff
	scoped, err := NewBlockedSlot(params)
	if err != nil {
		t.Fatalf("NewBlockedSlot returned error: %v", err)
	}

	if !scoped.AppliesToStaff("staff-1") {
		t.Error("scoped block must apply to its own staff member")
	}
	if scoped.AppliesToStaff("staff-2") {
		t.Error("scoped block must not apply to another staff member")
	}
}
