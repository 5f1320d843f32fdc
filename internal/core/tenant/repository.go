package tenant

import "context"

// Repository はテナントエンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, tenant *Tenant) (*Tenant, error)
	FindByID(ctx context.Context, id string) (*Tenant, error)
	// ExistsByID は ID のテナントが存在するかを返します。
	// blockedslot.TenantDirectory の存在確認として他コアからも利用されます。
	ExistsByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListTenantsFilter) ([]*Tenant, string, error)
}

// ListTenantsFilter は一覧取得時の検索条件を表します。
type ListTenantsFilter struct {
	Limit  int
	Offset int
	Status *Status
}
