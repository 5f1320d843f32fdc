package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
)

// TenantRepository はテナントのインメモリ実装です。
// blockedslot.TenantDirectory としても利用できます。
type TenantRepository struct {
	mu      sync.RWMutex
	tenants map[string]*tenant.Tenant
	order   []string
}

// NewTenantRepository は空の TenantRepository を生成します。
func NewTenantRepository() *TenantRepository {
	return &TenantRepository{tenants: make(map[string]*tenant.Tenant)}
}

// Create はテナントを保存します。ID が未設定の場合は採番します。
func (r *TenantRepository) Create(_ context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneTenant(t)
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.tenants[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneTenant(clone), nil
}

// FindByID は ID でテナントを取得します。
func (r *TenantRepository) FindByID(_ context.Context, id string) (*tenant.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tenants[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return cloneTenant(t), nil
}

// ExistsByID は ID のテナントが存在するかを返します。
func (r *TenantRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tenants[id]
	return ok, nil
}

// TenantExists は blockedslot.TenantDirectory を満たします。
func (r *TenantRepository) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	return r.ExistsByID(ctx, tenantID)
}

// List はテナントの一覧を登録順で返します。
func (r *TenantRepository) List(_ context.Context, filter tenant.ListTenantsFilter) ([]*tenant.Tenant, string, error) {
	if filter.Limit <= 0 {
		return nil, "", tenant.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", tenant.ErrInvalidPageToken
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]*tenant.Tenant, 0, len(r.order))
	for _, id := range r.order {
		t := r.tenants[id]
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, cloneTenant(t))
	}

	if filter.Offset > len(filtered) {
		return []*tenant.Tenant{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := filtered[filter.Offset:end]

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return page, nextToken, nil
}

func cloneTenant(t *tenant.Tenant) *tenant.Tenant {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}
