// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: blockedslot/v1/blockedslot.proto

package blockedslotv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BlockedSlot struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	// 未設定の場合はテナント全体に適用される全体ブロックです。
	StaffUserId   *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=staff_user_id,json=staffUserId,proto3" json:"staff_user_id,omitempty"`
	StartTime     *timestamppb.Timestamp  `protobuf:"bytes,4,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       *timestamppb.Timestamp  `protobuf:"bytes,5,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Reason        *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp  `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BlockedSlot) Reset() {
	*x = BlockedSlot{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BlockedSlot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BlockedSlot) ProtoMessage() {}

func (x *BlockedSlot) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BlockedSlot.ProtoReflect.Descriptor instead.
func (*BlockedSlot) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{0}
}

func (x *BlockedSlot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BlockedSlot) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *BlockedSlot) GetStaffUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.StaffUserId
	}
	return nil
}

func (x *BlockedSlot) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *BlockedSlot) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

func (x *BlockedSlot) GetReason() *wrapperspb.StringValue {
	if x != nil {
		return x.Reason
	}
	return nil
}

func (x *BlockedSlot) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *BlockedSlot) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateBlockedSlotRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	StaffUserId   *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=staff_user_id,json=staffUserId,proto3" json:"staff_user_id,omitempty"`
	StartTime     *timestamppb.Timestamp  `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       *timestamppb.Timestamp  `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Reason        *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBlockedSlotRequest) Reset() {
	*x = CreateBlockedSlotRequest{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBlockedSlotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBlockedSlotRequest) ProtoMessage() {}

func (x *CreateBlockedSlotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBlockedSlotRequest.ProtoReflect.Descriptor instead.
func (*CreateBlockedSlotRequest) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{1}
}

func (x *CreateBlockedSlotRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *CreateBlockedSlotRequest) GetStaffUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.StaffUserId
	}
	return nil
}

func (x *CreateBlockedSlotRequest) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *CreateBlockedSlotRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

func (x *CreateBlockedSlotRequest) GetReason() *wrapperspb.StringValue {
	if x != nil {
		return x.Reason
	}
	return nil
}

type CreateBlockedSlotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockedSlot   *BlockedSlot           `protobuf:"bytes,1,opt,name=blocked_slot,json=blockedSlot,proto3" json:"blocked_slot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBlockedSlotResponse) Reset() {
	*x = CreateBlockedSlotResponse{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBlockedSlotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBlockedSlotResponse) ProtoMessage() {}

func (x *CreateBlockedSlotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBlockedSlotResponse.ProtoReflect.Descriptor instead.
func (*CreateBlockedSlotResponse) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{2}
}

func (x *CreateBlockedSlotResponse) GetBlockedSlot() *BlockedSlot {
	if x != nil {
		return x.BlockedSlot
	}
	return nil
}

type DeleteBlockedSlotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId      string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBlockedSlotRequest) Reset() {
	*x = DeleteBlockedSlotRequest{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBlockedSlotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBlockedSlotRequest) ProtoMessage() {}

func (x *DeleteBlockedSlotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBlockedSlotRequest.ProtoReflect.Descriptor instead.
func (*DeleteBlockedSlotRequest) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{3}
}

func (x *DeleteBlockedSlotRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeleteBlockedSlotRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

type DeleteBlockedSlotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBlockedSlotResponse) Reset() {
	*x = DeleteBlockedSlotResponse{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBlockedSlotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBlockedSlotResponse) ProtoMessage() {}

func (x *DeleteBlockedSlotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBlockedSlotResponse.ProtoReflect.Descriptor instead.
func (*DeleteBlockedSlotResponse) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{4}
}

// ListBlockedSlots は期間を両方指定した場合は重なり判定で検索します。
type ListBlockedSlotsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	StaffUserId   *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=staff_user_id,json=staffUserId,proto3" json:"staff_user_id,omitempty"`
	StartTime     *timestamppb.Timestamp  `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       *timestamppb.Timestamp  `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBlockedSlotsRequest) Reset() {
	*x = ListBlockedSlotsRequest{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBlockedSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBlockedSlotsRequest) ProtoMessage() {}

func (x *ListBlockedSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBlockedSlotsRequest.ProtoReflect.Descriptor instead.
func (*ListBlockedSlotsRequest) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{5}
}

func (x *ListBlockedSlotsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ListBlockedSlotsRequest) GetStaffUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.StaffUserId
	}
	return nil
}

func (x *ListBlockedSlotsRequest) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *ListBlockedSlotsRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type ListBlockedSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockedSlots  []*BlockedSlot         `protobuf:"bytes,1,rep,name=blocked_slots,json=blockedSlots,proto3" json:"blocked_slots,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBlockedSlotsResponse) Reset() {
	*x = ListBlockedSlotsResponse{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBlockedSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBlockedSlotsResponse) ProtoMessage() {}

func (x *ListBlockedSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBlockedSlotsResponse.ProtoReflect.Descriptor instead.
func (*ListBlockedSlotsResponse) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{6}
}

func (x *ListBlockedSlotsResponse) GetBlockedSlots() []*BlockedSlot {
	if x != nil {
		return x.BlockedSlots
	}
	return nil
}

// FindBlockedSlots は期間を両方指定した場合に包含判定で検索します。
// ListBlockedSlots の重なり判定とは意図的に異なります。
type FindBlockedSlotsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	StaffUserId   *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=staff_user_id,json=staffUserId,proto3" json:"staff_user_id,omitempty"`
	StartTime     *timestamppb.Timestamp  `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       *timestamppb.Timestamp  `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindBlockedSlotsRequest) Reset() {
	*x = FindBlockedSlotsRequest{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindBlockedSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindBlockedSlotsRequest) ProtoMessage() {}

func (x *FindBlockedSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindBlockedSlotsRequest.ProtoReflect.Descriptor instead.
func (*FindBlockedSlotsRequest) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{7}
}

func (x *FindBlockedSlotsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *FindBlockedSlotsRequest) GetStaffUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.StaffUserId
	}
	return nil
}

func (x *FindBlockedSlotsRequest) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *FindBlockedSlotsRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type FindBlockedSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockedSlots  []*BlockedSlot         `protobuf:"bytes,1,rep,name=blocked_slots,json=blockedSlots,proto3" json:"blocked_slots,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindBlockedSlotsResponse) Reset() {
	*x = FindBlockedSlotsResponse{}
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindBlockedSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindBlockedSlotsResponse) ProtoMessage() {}

func (x *FindBlockedSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_blockedslot_v1_blockedslot_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindBlockedSlotsResponse.ProtoReflect.Descriptor instead.
func (*FindBlockedSlotsResponse) Descriptor() ([]byte, []int) {
	return file_blockedslot_v1_blockedslot_proto_rawDescGZIP(), []int{8}
}

func (x *FindBlockedSlotsResponse) GetBlockedSlots() []*BlockedSlot {
	if x != nil {
		return x.BlockedSlots
	}
	return nil
}

var File_blockedslot_v1_blockedslot_proto protoreflect.FileDescriptor

var file_blockedslot_v1_blockedslot_proto_rawDesc = string([]byte{
	0x0a, 0x20, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2f, 0x76, 0x31,
	0x2f, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e,
	0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x1a, 0x1e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x77, 0x72, 0x61, 0x70, 0x70, 0x65, 0x72, 0x73, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x22, 0x9a, 0x03, 0x0a, 0x0b, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53,
	0x6c, 0x6f, 0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x02, 0x69, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x5f, 0x69, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x49, 0x64,
	0x12, 0x40, 0x0a, 0x0d, 0x73, 0x74, 0x61, 0x66, 0x66, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69,
	0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67,
	0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x0b, 0x73, 0x74, 0x61, 0x66, 0x66, 0x55, 0x73, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x39, 0x0a, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x52, 0x09, 0x73, 0x74, 0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a,
	0x08, 0x65, 0x6e, 0x64, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64,
	0x54, 0x69, 0x6d, 0x65, 0x12, 0x34, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x06,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x56, 0x61, 0x6c,
	0x75, 0x65, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x12, 0x39, 0x0a, 0x0a, 0x63, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61,
	0x74, 0x65, 0x64, 0x41, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64,
	0x5f, 0x61, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74,
	0x22, 0xa1, 0x02, 0x0a, 0x18, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a,
	0x09, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x08, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x40, 0x0a, 0x0d, 0x73, 0x74,
	0x61, 0x66, 0x66, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1c, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x52,
	0x0b, 0x73, 0x74, 0x61, 0x66, 0x66, 0x55, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x39, 0x0a, 0x0a,
	0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x73, 0x74,
	0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f, 0x74,
	0x69, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x34,
	0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x06, 0x72, 0x65,
	0x61, 0x73, 0x6f, 0x6e, 0x22, 0x5b, 0x0a, 0x19, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x6c,
	0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x3e, 0x0a, 0x0c, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x5f, 0x73, 0x6c, 0x6f,
	0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65,
	0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64,
	0x53, 0x6c, 0x6f, 0x74, 0x52, 0x0b, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f,
	0x74, 0x22, 0x47, 0x0a, 0x18, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1b, 0x0a,
	0x09, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x08, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x49, 0x64, 0x22, 0x1b, 0x0a, 0x19, 0x44, 0x65,
	0x6c, 0x65, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0xea, 0x01, 0x0a, 0x17, 0x4c, 0x69, 0x73, 0x74,
	0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x49, 0x64,
	0x12, 0x40, 0x0a, 0x0d, 0x73, 0x74, 0x61, 0x66, 0x66, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69,
	0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67,
	0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x0b, 0x73, 0x74, 0x61, 0x66, 0x66, 0x55, 0x73, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x39, 0x0a, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x52, 0x09, 0x73, 0x74, 0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a,
	0x08, 0x65, 0x6e, 0x64, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64,
	0x54, 0x69, 0x6d, 0x65, 0x22, 0x5c, 0x0a, 0x18, 0x4c, 0x69, 0x73, 0x74, 0x42, 0x6c, 0x6f, 0x63,
	0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x40, 0x0a, 0x0d, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x5f, 0x73, 0x6c, 0x6f, 0x74,
	0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65,
	0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64,
	0x53, 0x6c, 0x6f, 0x74, 0x52, 0x0c, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f,
	0x74, 0x73, 0x22, 0xea, 0x01, 0x0a, 0x17, 0x46, 0x69, 0x6e, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b,
	0x0a, 0x09, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x40, 0x0a, 0x0d, 0x73,
	0x74, 0x61, 0x66, 0x66, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2e, 0x53, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x56, 0x61, 0x6c, 0x75, 0x65,
	0x52, 0x0b, 0x73, 0x74, 0x61, 0x66, 0x66, 0x55, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x39, 0x0a,
	0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f,
	0x74, 0x69, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x54, 0x69, 0x6d, 0x65, 0x22,
	0x5c, 0x0a, 0x18, 0x46, 0x69, 0x6e, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c,
	0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x40, 0x0a, 0x0d, 0x62,
	0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x5f, 0x73, 0x6c, 0x6f, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52,
	0x0c, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x32, 0xb6, 0x03,
	0x0a, 0x12, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x53, 0x65, 0x72,
	0x76, 0x69, 0x63, 0x65, 0x12, 0x68, 0x0a, 0x11, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x6c,
	0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x12, 0x28, 0x2e, 0x62, 0x6c, 0x6f, 0x63,
	0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74,
	0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x68,
	0x0a, 0x11, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53,
	0x6c, 0x6f, 0x74, 0x12, 0x28, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e,
	0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44,
	0x65, 0x6c, 0x65, 0x74, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x65, 0x0a, 0x10, 0x4c, 0x69, 0x73, 0x74,
	0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x12, 0x27, 0x2e, 0x62,
	0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69,
	0x73, 0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73,
	0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x65, 0x0a, 0x10, 0x46, 0x69, 0x6e, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c,
	0x6f, 0x74, 0x73, 0x12, 0x27, 0x2e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x69, 0x6e, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64,
	0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x62,
	0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x69,
	0x6e, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x53, 0x6c, 0x6f, 0x74, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x6b, 0x5a, 0x69, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6f, 0x67, 0x75, 0x72, 0x61, 0x73, 0x6f, 0x75, 0x73, 0x75, 0x69,
	0x2f, 0x73, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x69, 0x6e, 0x67, 0x2d, 0x67, 0x72, 0x70, 0x63,
	0x2d, 0x63, 0x6c, 0x65, 0x61, 0x6e, 0x2d, 0x61, 0x72, 0x63, 0x68, 0x2f, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74, 0x65, 0x72, 0x73, 0x2f, 0x67, 0x72,
	0x70, 0x63, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c,
	0x6f, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x73, 0x6c, 0x6f,
	0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_blockedslot_v1_blockedslot_proto_rawDescOnce sync.Once
	file_blockedslot_v1_blockedslot_proto_rawDescData []byte
)

func file_blockedslot_v1_blockedslot_proto_rawDescGZIP() []byte {
	file_blockedslot_v1_blockedslot_proto_rawDescOnce.Do(func() {
		file_blockedslot_v1_blockedslot_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_blockedslot_v1_blockedslot_proto_rawDesc), len(file_blockedslot_v1_blockedslot_proto_rawDesc)))
	})
	return file_blockedslot_v1_blockedslot_proto_rawDescData
}

var file_blockedslot_v1_blockedslot_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_blockedslot_v1_blockedslot_proto_goTypes = []any{
	(*BlockedSlot)(nil),               // 0: blockedslot.v1.BlockedSlot
	(*CreateBlockedSlotRequest)(nil),  // 1: blockedslot.v1.CreateBlockedSlotRequest
	(*CreateBlockedSlotResponse)(nil), // 2: blockedslot.v1.CreateBlockedSlotResponse
	(*DeleteBlockedSlotRequest)(nil),  // 3: blockedslot.v1.DeleteBlockedSlotRequest
	(*DeleteBlockedSlotResponse)(nil), // 4: blockedslot.v1.DeleteBlockedSlotResponse
	(*ListBlockedSlotsRequest)(nil),   // 5: blockedslot.v1.ListBlockedSlotsRequest
	(*ListBlockedSlotsResponse)(nil),  // 6: blockedslot.v1.ListBlockedSlotsResponse
	(*FindBlockedSlotsRequest)(nil),   // 7: blockedslot.v1.FindBlockedSlotsRequest
	(*FindBlockedSlotsResponse)(nil),  // 8: blockedslot.v1.FindBlockedSlotsResponse
	(*wrapperspb.StringValue)(nil),    // 9: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),     // 10: google.protobuf.Timestamp
}
var file_blockedslot_v1_blockedslot_proto_depIdxs = []int32{
	9,  // 0: blockedslot.v1.BlockedSlot.staff_user_id:type_name -> google.protobuf.StringValue
	10, // 1: blockedslot.v1.BlockedSlot.start_time:type_name -> google.protobuf.Timestamp
	10, // 2: blockedslot.v1.BlockedSlot.end_time:type_name -> google.protobuf.Timestamp
	9,  // 3: blockedslot.v1.BlockedSlot.reason:type_name -> google.protobuf.StringValue
	10, // 4: blockedslot.v1.BlockedSlot.created_at:type_name -> google.protobuf.Timestamp
	10, // 5: blockedslot.v1.BlockedSlot.updated_at:type_name -> google.protobuf.Timestamp
	9,  // 6: blockedslot.v1.CreateBlockedSlotRequest.staff_user_id:type_name -> google.protobuf.StringValue
	10, // 7: blockedslot.v1.CreateBlockedSlotRequest.start_time:type_name -> google.protobuf.Timestamp
	10, // 8: blockedslot.v1.CreateBlockedSlotRequest.end_time:type_name -> google.protobuf.Timestamp
	9,  // 9: blockedslot.v1.CreateBlockedSlotRequest.reason:type_name -> google.protobuf.StringValue
	0,  // 10: blockedslot.v1.CreateBlockedSlotResponse.blocked_slot:type_name -> blockedslot.v1.BlockedSlot
	9,  // 11: blockedslot.v1.ListBlockedSlotsRequest.staff_user_id:type_name -> google.protobuf.StringValue
	10, // 12: blockedslot.v1.ListBlockedSlotsRequest.start_time:type_name -> google.protobuf.Timestamp
	10, // 13: blockedslot.v1.ListBlockedSlotsRequest.end_time:type_name -> google.protobuf.Timestamp
	0,  // 14: blockedslot.v1.ListBlockedSlotsResponse.blocked_slots:type_name -> blockedslot.v1.BlockedSlot
	9,  // 15: blockedslot.v1.FindBlockedSlotsRequest.staff_user_id:type_name -> google.protobuf.StringValue
	10, // 16: blockedslot.v1.FindBlockedSlotsRequest.start_time:type_name -> google.protobuf.Timestamp
	10, // 17: blockedslot.v1.FindBlockedSlotsRequest.end_time:type_name -> google.protobuf.Timestamp
	0,  // 18: blockedslot.v1.FindBlockedSlotsResponse.blocked_slots:type_name -> blockedslot.v1.BlockedSlot
	1,  // 19: blockedslot.v1.BlockedSlotService.CreateBlockedSlot:input_type -> blockedslot.v1.CreateBlockedSlotRequest
	3,  // 20: blockedslot.v1.BlockedSlotService.DeleteBlockedSlot:input_type -> blockedslot.v1.DeleteBlockedSlotRequest
	5,  // 21: blockedslot.v1.BlockedSlotService.ListBlockedSlots:input_type -> blockedslot.v1.ListBlockedSlotsRequest
	7,  // 22: blockedslot.v1.BlockedSlotService.FindBlockedSlots:input_type -> blockedslot.v1.FindBlockedSlotsRequest
	2,  // 23: blockedslot.v1.BlockedSlotService.CreateBlockedSlot:output_type -> blockedslot.v1.CreateBlockedSlotResponse
	4,  // 24: blockedslot.v1.BlockedSlotService.DeleteBlockedSlot:output_type -> blockedslot.v1.DeleteBlockedSlotResponse
	6,  // 25: blockedslot.v1.BlockedSlotService.ListBlockedSlots:output_type -> blockedslot.v1.ListBlockedSlotsResponse
	8,  // 26: blockedslot.v1.BlockedSlotService.FindBlockedSlots:output_type -> blockedslot.v1.FindBlockedSlotsResponse
	23, // [23:27] is the sub-list for method output_type
	19, // [19:23] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_blockedslot_v1_blockedslot_proto_init() }
func file_blockedslot_v1_blockedslot_proto_init() {
	if File_blockedslot_v1_blockedslot_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_blockedslot_v1_blockedslot_proto_rawDesc), len(file_blockedslot_v1_blockedslot_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_blockedslot_v1_blockedslot_proto_goTypes,
		DependencyIndexes: file_blockedslot_v1_blockedslot_proto_depIdxs,
		MessageInfos:      file_blockedslot_v1_blockedslot_proto_msgTypes,
	}.Build()
	File_blockedslot_v1_blockedslot_proto = out.File
	file_blockedslot_v1_blockedslot_proto_goTypes = nil
	file_blockedslot_v1_blockedslot_proto_depIdxs = nil
}
