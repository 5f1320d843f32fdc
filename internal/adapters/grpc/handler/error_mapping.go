package handler

import (
	"errors"

	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, blockedslot.ErrInvalidTenantID),
		errors.Is(err, blockedslot.ErrInvalidStaffUserID),
		errors.Is(err, blockedslot.ErrInvalidTimeRange),
		errors.Is(err, blockedslot.ErrReasonTooLong),
		errors.Is(err, blockedslot.ErrInvalidDates),
		errors.Is(err, tenant.ErrInvalidName),
		errors.Is(err, tenant.ErrInvalidStatus),
		errors.Is(err, tenant.ErrInvalidID),
		errors.Is(err, tenant.ErrInvalidPageSize),
		errors.Is(err, tenant.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, blockedslot.ErrOverlappingSlot):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, blockedslot.ErrSlotTenantMismatch):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, blockedslot.ErrBlockedSlotNotFound),
		errors.Is(err, blockedslot.ErrTenantNotFound),
		errors.Is(err, tenant.ErrTenantNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
