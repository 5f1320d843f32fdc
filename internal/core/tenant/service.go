package tenant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service はテナントに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase はテナントユースケースの公開インターフェースです。
type UseCase interface {
	CreateTenant(ctx context.Context, in CreateTenantInput) (*Tenant, error)
	GetTenant(ctx context.Context, in GetTenantInput) (*Tenant, error)
	ListTenants(ctx context.Context, in ListTenantsInput) (*ListTenantsResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// CreateTenantInput はテナント作成時の入力です。
type CreateTenantInput struct {
	Name string
}

// GetTenantInput はテナント取得時の入力です。
type GetTenantInput struct {
	ID string
}

// ListTenantsInput は一覧取得時の入力です。
type ListTenantsInput struct {
	PageSize  int
	PageToken string
	Status    *Status
}

// ListTenantsResult は一覧取得結果を表します。
type ListTenantsResult struct {
	Tenants       []*Tenant
	NextPageToken string
}

// CreateTenant は新しいテナントを作成します。
func (s *Service) CreateTenant(ctx context.Context, in CreateTenantInput) (*Tenant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	now := s.clock.Now()
	t := &Tenant{
		Name:      name,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetTenant は ID でテナントを取得します。
func (s *Service) GetTenant(ctx context.Context, in GetTenantInput) (*Tenant, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.repo.FindByID(ctx, in.ID)
}

// ListTenants はテナントの一覧を取得します。
func (s *Service) ListTenants(ctx context.Context, in ListTenantsInput) (*ListTenantsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var statusPtr *Status
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	tenants, nextToken, err := s.repo.List(ctx, ListTenantsFilter{
		Limit:  limit,
		Offset: offset,
		Status: statusPtr,
	})
	if err != nil {
		return nil, err
	}

	return &ListTenantsResult{Tenants: tenants, NextPageToken: nextToken}, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
