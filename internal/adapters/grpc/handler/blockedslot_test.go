package handler

import (
	"context"
	"testing"
	"time"

	blockedslotpb "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/grpc/gen/blockedslot/v1"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubBlockedSlotUseCase struct {
	createInput blockedslot.CreateBlockedSlotInput
	createOut   *blockedslot.BlockedSlot
	createErr   error

	deleteInput blockedslot.DeleteBlockedSlotInput
	deleteErr   error

	listInput blockedslot.ListBlockedSlotsInput
	listOut   []*blockedslot.BlockedSlot
	listErr   error

	findInput blockedslot.FindBlockedSlotsInput
	findOut   []*blockedslot.BlockedSlot
	findErr   error
}

func (s *stubBlockedSlotUseCase) CreateBlockedSlot(ctx context.Context, in blockedslot.CreateBlockedSlotInput) (*blockedslot.BlockedSlot, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubBlockedSlotUseCase) DeleteBlockedSlot(ctx context.Context, in blockedslot.DeleteBlockedSlotInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubBlockedSlotUseCase) ListBlockedSlots(ctx context.Context, in blockedslot.ListBlockedSlotsInput) ([]*blockedslot.BlockedSlot, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubBlockedSlotUseCase) FindBlockedSlots(ctx context.Context, in blockedslot.FindBlockedSlotsInput) ([]*blockedslot.BlockedSlot, error) {
	s.findInput = in
	return s.findOut, s.findErr
}

func newSlotFixture(t *testing.T, id string, staffUserID, reason *string) *blockedslot.BlockedSlot {
	t.Helper()

	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	slot, err := blockedslot.NewBlockedSlot(blockedslot.NewBlockedSlotParams{
		ID:          id,
		TenantID:    "tenant-1",
		StaffUserID: staffUserID,
		StartTime:   time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC),
		Reason:      reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("failed to build slot fixture: %v", err)
	}
	return slot
}

func TestBlockedSlotGrpcHandler_CreateBlockedSlot_Success(t *testing.T) {
	t.Parallel()

	staff := "staff-1"
	reason := "maintenance"
	stub := &stubBlockedSlotUseCase{createOut: newSlotFixture(t, "slot-1", &staff, &reason)}

	handler := NewBlockedSlotGrpcHandler(stub)
	start := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	resp, err := handler.CreateBlockedSlot(context.Background(), &blockedslotpb.CreateBlockedSlotRequest{
		TenantId:    "tenant-1",
		StaffUserId: wrapperspb.String("staff-1"),
		StartTime:   timestamppb.New(start),
		EndTime:     timestamppb.New(end),
		Reason:      wrapperspb.String("maintenance"),
	})
	if err != nil {
		t.Fatalf("CreateBlockedSlot returned error: %v", err)
	}

	if stub.createInput.TenantID != "tenant-1" {
		t.Errorf("expected tenant id to pass through, got %s", stub.createInput.TenantID)
	}
	if stub.createInput.StaffUserID == nil || *stub.createInput.StaffUserID != "staff-1" {
		t.Errorf("expected staff user id to pass through, got %+v", stub.createInput.StaffUserID)
	}
	if !stub.createInput.StartTime.Equal(start) || !stub.createInput.EndTime.Equal(end) {
		t.Errorf("expected time range to pass through, got %s - %s", stub.createInput.StartTime, stub.createInput.EndTime)
	}

	if resp.GetBlockedSlot().GetId() != "slot-1" {
		t.Fatalf("expected response id 'slot-1', got %s", resp.GetBlockedSlot().GetId())
	}
	if resp.GetBlockedSlot().GetStaffUserId().GetValue() != "staff-1" {
		t.Fatalf("expected staff user id in response, got %+v", resp.GetBlockedSlot().GetStaffUserId())
	}
	if resp.GetBlockedSlot().GetReason().GetValue() != "maintenance" {
		t.Fatalf("expected reason in response, got %+v", resp.GetBlockedSlot().GetReason())
	}
}

func TestBlockedSlotGrpcHandler_CreateBlockedSlot_MissingTimes(t *testing.T) {
	t.Parallel()

	handler := NewBlockedSlotGrpcHandler(&stubBlockedSlotUseCase{})
	start := timestamppb.New(time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC))

	_, err := handler.CreateBlockedSlot(context.Background(), &blockedslotpb.CreateBlockedSlotRequest{
		TenantId:  "tenant-1",
		StartTime: start,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for missing end_time, got %v", err)
	}

	_, err = handler.CreateBlockedSlot(context.Background(), &blockedslotpb.CreateBlockedSlotRequest{
		TenantId: "tenant-1",
		EndTime:  start,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for missing start_time, got %v", err)
	}
}

func TestBlockedSlotGrpcHandler_CreateBlockedSlot_ErrorMapping(t *testing.T) {
	t.Parallel()

	start := timestamppb.New(time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC))
	end := timestamppb.New(time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC))

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"overlap", blockedslot.ErrOverlappingSlot, codes.AlreadyExists},
		{"tenant not found", blockedslot.ErrTenantNotFound, codes.NotFound},
		{"invalid time range", blockedslot.ErrInvalidTimeRange, codes.InvalidArgument},
		{"reason too long", blockedslot.ErrReasonTooLong, codes.InvalidArgument},
		{"blank staff user id", blockedslot.ErrInvalidStaffUserID, codes.InvalidArgument},
	}

	for _, tc := range cases {
		handler := NewBlockedSlotGrpcHandler(&stubBlockedSlotUseCase{createErr: tc.err})

		_, err := handler.CreateBlockedSlot(context.Background(), &blockedslotpb.CreateBlockedSlotRequest{
			TenantId:  "tenant-1",
			StartTime: start,
			EndTime:   end,
		})
		if status.Code(err) != tc.code {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestBlockedSlotGrpcHandler_DeleteBlockedSlot(t *testing.T) {
	t.Parallel()

	stub := &stubBlockedSlotUseCase{}
	handler := NewBlockedSlotGrpcHandler(stub)

	resp, err := handler.DeleteBlockedSlot(context.Background(), &blockedslotpb.DeleteBlockedSlotRequest{
		Id:       "slot-1",
		TenantId: "tenant-1",
	})
	if err != nil {
		t.Fatalf("DeleteBlockedSlot returned error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected empty response, got nil")
	}

	if stub.deleteInput.ID != "slot-1" || stub.deleteInput.TenantID != "tenant-1" {
		t.Fatalf("unexpected delete input: %+v", stub.deleteInput)
	}
}

func TestBlockedSlotGrpcHandler_DeleteBlockedSlot_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", blockedslot.ErrBlockedSlotNotFound, codes.NotFound},
		{"tenant mismatch", blockedslot.ErrSlotTenantMismatch, codes.PermissionDenied},
	}

	for _, tc := range cases {
		handler := NewBlockedSlotGrpcHandler(&stubBlockedSlotUseCase{deleteErr: tc.err})

		_, err := handler.DeleteBlockedSlot(context.Background(), &blockedslotpb.DeleteBlockedSlotRequest{
			Id:       "slot-1",
			TenantId: "tenant-1",
		})
		if status.Code(err) != tc.code {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestBlockedSlotGrpcHandler_ListBlockedSlots(t *testing.T) {
	t.Parallel()

	stub := &stubBlockedSlotUseCase{listOut: []*blockedslot.BlockedSlot{
		newSlotFixture(t, "slot-1", nil, nil),
		newSlotFixture(t, "slot-2", nil, nil),
	}}
	handler := NewBlockedSlotGrpcHandler(stub)

	start := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	resp, err := handler.ListBlockedSlots(context.Background(), &blockedslotpb.ListBlockedSlotsRequest{
		TenantId:    "tenant-1",
		StaffUserId: wrapperspb.String("staff-1"),
		StartTime:   timestamppb.New(start),
		EndTime:     timestamppb.New(end),
	})
	if err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}

	if stub.listInput.TenantID != "tenant-1" {
		t.Errorf("expected tenant id to pass through, got %s", stub.listInput.TenantID)
	}
	if stub.listInput.StaffUserID == nil || *stub.listInput.StaffUserID != "staff-1" {
		t.Errorf("expected staff user id to pass through, got %+v", stub.listInput.StaffUserID)
	}
	if stub.listInput.StartTime == nil || !stub.listInput.StartTime.Equal(start) {
		t.Errorf("expected start time to pass through, got %+v", stub.listInput.StartTime)
	}
	if stub.listInput.EndTime == nil || !stub.listInput.EndTime.Equal(end) {
		t.Errorf("expected end time to pass through, got %+v", stub.listInput.EndTime)
	}

	if len(resp.GetBlockedSlots()) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(resp.GetBlockedSlots()))
	}
	if resp.GetBlockedSlots()[0].GetStaffUserId() != nil {
		t.Fatal("general block must serialize staff_user_id as null")
	}
}

func TestBlockedSlotGrpcHandler_ListBlockedSlots_OmittedFilters(t *testing.T) {
	t.Parallel()

	stub := &stubBlockedSlotUseCase{listOut: []*blockedslot.BlockedSlot{}}
	handler := NewBlockedSlotGrpcHandler(stub)

	if _, err := handler.ListBlockedSlots(context.Background(), &blockedslotpb.ListBlockedSlotsRequest{
		TenantId: "tenant-1",
	}); err != nil {
		t.Fatalf("ListBlockedSlots returned error: %v", err)
	}

	if stub.listInput.StaffUserID != nil || stub.listInput.StartTime != nil || stub.listInput.EndTime != nil {
		t.Fatalf("expected omitted filters to stay nil: %+v", stub.listInput)
	}
}

func TestBlockedSlotGrpcHandler_FindBlockedSlots(t *testing.T) {
	t.Parallel()

	staff := "staff-1"
	stub := &stubBlockedSlotUseCase{findOut: []*blockedslot.BlockedSlot{
		newSlotFixture(t, "slot-1", &staff, nil),
	}}
	handler := NewBlockedSlotGrpcHandler(stub)

	start := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	resp, err := handler.FindBlockedSlots(context.Background(), &blockedslotpb.FindBlockedSlotsRequest{
		TenantId:    "tenant-1",
		StaffUserId: wrapperspb.String("staff-1"),
		StartTime:   timestamppb.New(start),
		EndTime:     timestamppb.New(end),
	})
	if err != nil {
		t.Fatalf("FindBlockedSlots returned error: %v", err)
	}

	if stub.findInput.TenantID != "tenant-1" {
		t.Errorf("expected tenant id to pass through, got %s", stub.findInput.TenantID)
	}
	if stub.findInput.StaffUserID == nil || *stub.findInput.StaffUserID != "staff-1" {
		t.Errorf("expected staff user id to pass through, got %+v", stub.findInput.StaffUserID)
	}

	if len(resp.GetBlockedSlots()) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(resp.GetBlockedSlots()))
	}
	if resp.GetBlockedSlots()[0].GetStaffUserId().GetValue() != "staff-1" {
		t.Fatalf("unexpected staff user id: %+v", resp.GetBlockedSlots()[0].GetStaffUserId())
	}
}

func TestBlockedSlotGrpcHandler_ListBlockedSlots_InvalidTenant(t *testing.T) {
	t.Parallel()

	handler := NewBlockedSlotGrpcHandler(&stubBlockedSlotUseCase{listErr: blockedslot.ErrInvalidTenantID})

	_, err := handler.ListBlockedSlots(context.Background(), &blockedslotpb.ListBlockedSlotsRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
