package handler

import (
	"context"

	tenantpb "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/adapters/grpc/gen/tenant/v1"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TenantGrpcHandler は TenantService の gRPC 実装です。
type TenantGrpcHandler struct {
	svc tenant.UseCase
	tenantpb.UnimplementedTenantServiceServer
}

// NewTenantGrpcHandler は TenantGrpcHandler を生成します。
func NewTenantGrpcHandler(svc tenant.UseCase) *TenantGrpcHandler {
	return &TenantGrpcHandler{svc: svc}
}

// CreateTenant はテナントを作成します。
func (h *TenantGrpcHandler) CreateTenant(ctx context.Context, req *tenantpb.CreateTenantRequest) (*tenantpb.CreateTenantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateTenant(ctx, tenant.CreateTenantInput{Name: req.GetName()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tenantpb.CreateTenantResponse{Tenant: toProtoTenant(created)}, nil
}

// GetTenant は ID でテナントを取得します。
func (h *TenantGrpcHandler) GetTenant(ctx context.Context, req *tenantpb.GetTenantRequest) (*tenantpb.GetTenantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetTenant(ctx, tenant.GetTenantInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tenantpb.GetTenantResponse{Tenant: toProtoTenant(found)}, nil
}

// ListTenants はテナントの一覧を取得します。
func (h *TenantGrpcHandler) ListTenants(ctx context.Context, req *tenantpb.ListTenantsRequest) (*tenantpb.ListTenantsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *tenant.Status
	if req.GetStatus() != tenantpb.TenantStatus_TENANT_STATUS_UNSPECIFIED {
		domainStatus, err := toTenantDomainStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	result, err := h.svc.ListTenants(ctx, tenant.ListTenantsInput{
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
		Status:    statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoTenants := make([]*tenantpb.Tenant, 0, len(result.Tenants))
	for _, t := range result.Tenants {
		protoTenants = append(protoTenants, toProtoTenant(t))
	}

	return &tenantpb.ListTenantsResponse{
		Tenants:       protoTenants,
		NextPageToken: result.NextPageToken,
	}, nil
}

func toProtoTenant(t *tenant.Tenant) *tenantpb.Tenant {
	if t == nil {
		return nil
	}

	return &tenantpb.Tenant{
		Id:        t.ID,
		Name:      t.Name,
		Status:    toTenantProtoStatus(t.Status),
		CreatedAt: timestamppb.New(t.CreatedAt),
		UpdatedAt: timestamppb.New(t.UpdatedAt),
	}
}

func toTenantProtoStatus(status tenant.Status) tenantpb.TenantStatus {
	switch status {
	case tenant.StatusActive:
		return tenantpb.TenantStatus_TENANT_STATUS_ACTIVE
	case tenant.StatusInactive:
		return tenantpb.TenantStatus_TENANT_STATUS_INACTIVE
	default:
		return tenantpb.TenantStatus_TENANT_STATUS_UNSPECIFIED
	}
}

func toTenantDomainStatus(status tenantpb.TenantStatus) (tenant.Status, error) {
	switch status {
	case tenantpb.TenantStatus_TENANT_STATUS_ACTIVE:
		return tenant.StatusActive, nil
	case tenantpb.TenantStatus_TENANT_STATUS_INACTIVE:
		return tenant.StatusInactive, nil
	case tenantpb.TenantStatus_TENANT_STATUS_UNSPECIFIED:
		return "", nil
	default:
		return "", tenant.ErrInvalidStatus
	}
}
