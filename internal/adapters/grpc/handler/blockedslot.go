package handler

import (
	"context"
	"time"

	blockedslotpb "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/grpc/gen/blockedslot/v1"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// BlockedSlotGrpcHandler は BlockedSlotService の gRPC 実装です。
type BlockedSlotGrpcHandler struct {
	svc blockedslot.UseCase
	blockedslotpb.UnimplementedBlockedSlotServiceServer
}

// NewBlockedSlotGrpcHandler は BlockedSlotGrpcHandler を生成します。
func NewBlockedSlotGrpcHandler(svc blockedslot.UseCase) *BlockedSlotGrpcHandler {
	return &BlockedSlotGrpcHandler{svc: svc}
}

// CreateBlockedSlot はブロック時間帯を作成します。
func (h *BlockedSlotGrpcHandler) CreateBlockedSlot(ctx context.Context, req *blockedslotpb.CreateBlockedSlotRequest) (*blockedslotpb.CreateBlockedSlotResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetStartTime() == nil {
		return nil, status.Error(codes.InvalidArgument, "start_time is required")
	}
	if req.GetEndTime() == nil {
		return nil, status.Error(codes.InvalidArgument, "end_time is required")
	}

	created, err := h.svc.CreateBlockedSlot(ctx, blockedslot.CreateBlockedSlotInput{
		TenantID:    req.GetTenantId(),
		StaffUserID: stringWrapperToPointer(req.GetStaffUserId()),
		StartTime:   req.GetStartTime().AsTime(),
		EndTime:     req.GetEndTime().AsTime(),
		Reason:      stringWrapperToPointer(req.GetReason()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &blockedslotpb.CreateBlockedSlotResponse{BlockedSlot: toProtoBlockedSlot(created)}, nil
}

// DeleteBlockedSlot はブロック時間帯を削除します。
func (h *BlockedSlotGrpcHandler) DeleteBlockedSlot(ctx context.Context, req *blockedslotpb.DeleteBlockedSlotRequest) (*blockedslotpb.DeleteBlockedSlotResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteBlockedSlot(ctx, blockedslot.DeleteBlockedSlotInput{
		ID:       req.GetId(),
		TenantID: req.GetTenantId(),
	}); err != nil {
		return nil, toStatusError(err)
	}

	return &blockedslotpb.DeleteBlockedSlotResponse{}, nil
}

// ListBlockedSlots はブロック時間帯の一覧を取得します。
// 期間を両方指定した場合は重なり判定で絞り込まれます。
func (h *BlockedSlotGrpcHandler) ListBlockedSlots(ctx context.Context, req *blockedslotpb.ListBlockedSlotsRequest) (*blockedslotpb.ListBlockedSlotsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	slots, err := h.svc.ListBlockedSlots(ctx, blockedslot.ListBlockedSlotsInput{
		TenantID:    req.GetTenantId(),
		StaffUserID: stringWrapperToPointer(req.GetStaffUserId()),
		StartTime:   timestampToPointer(req.GetStartTime()),
		EndTime:     timestampToPointer(req.GetEndTime()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &blockedslotpb.ListBlockedSlotsResponse{BlockedSlots: toProtoBlockedSlots(slots)}, nil
}

// FindBlockedSlots はブロック時間帯を検索します。
// 期間を両方指定した場合は包含判定で絞り込まれます(ListBlockedSlots とは異なります)。
func (h *BlockedSlotGrpcHandler) FindBlockedSlots(ctx context.Context, req *blockedslotpb.FindBlockedSlotsRequest) (*blockedslotpb.FindBlockedSlotsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	slots, err := h.svc.FindBlockedSlots(ctx, blockedslot.FindBlockedSlotsInput{
		TenantID:    req.GetTenantId(),
		StaffUserID: stringWrapperToPointer(req.GetStaffUserId()),
		StartTime:   timestampToPointer(req.GetStartTime()),
		EndTime:     timestampToPointer(req.GetEndTime()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &blockedslotpb.FindBlockedSlotsResponse{BlockedSlots: toProtoBlockedSlots(slots)}, nil
}

func toProtoBlockedSlots(slots []*blockedslot.BlockedSlot) []*blockedslotpb.BlockedSlot {
	protoSlots := make([]*blockedslotpb.BlockedSlot, 0, len(slots))
	for _, slot := range slots {
		protoSlots = append(protoSlots, toProtoBlockedSlot(slot))
	}
	return protoSlots
}

func toProtoBlockedSlot(slot *blockedslot.BlockedSlot) *blockedslotpb.BlockedSlot {
	if slot == nil {
		return nil
	}

	return &blockedslotpb.BlockedSlot{
		Id:          slot.ID(),
		TenantId:    slot.TenantID(),
		StaffUserId: pointerToStringWrapper(slot.StaffUserID()),
		StartTime:   timestamppb.New(slot.StartTime()),
		EndTime:     timestamppb.New(slot.EndTime()),
		Reason:      pointerToStringWrapper(slot.Reason()),
		CreatedAt:   timestamppb.New(slot.CreatedAt()),
		UpdatedAt:   timestamppb.New(slot.UpdatedAt()),
	}
}

func stringWrapperToPointer(value *wrapperspb.StringValue) *string {
	if value == nil {
		return nil
	}
	s := value.GetValue()
	return &s
}

func pointerToStringWrapper(value *string) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(*value)
}

func timestampToPointer(value *timestamppb.Timestamp) *time.Time {
	if value == nil {
		return nil
	}
	t := value.AsTime()
	return &t
}
