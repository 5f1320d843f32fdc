package blockedslot

import (
	"context"
	"time"
)

// Repository はブロック時間帯の永続化を行うインターフェースです。
type Repository interface {
	// Create はブロックを保存し、保存したエンティティをそのまま返します。
	// ID は呼び出し側で採番済みであることを前提とします。
	Create(ctx context.Context, slot *BlockedSlot) (*BlockedSlot, error)
	// Delete は ID で削除します。ストレージ層では冪等であり、
	// 存在しない ID の削除はエラーになりません(存在確認はユースケースの責務です)。
	Delete(ctx context.Context, id string) error
	// FindByID は ID で検索し、存在しない場合は ErrBlockedSlotNotFound を返します。
	FindByID(ctx context.Context, id string) (*BlockedSlot, error)
	// FindByTenantID はテナントの全ブロックを登録順で返します。
	FindByTenantID(ctx context.Context, tenantID string) ([]*BlockedSlot, error)
	// FindByStaffUserID はスタッフ ID とテナント ID の完全一致で検索します。
	// 全体ブロック(スタッフ未指定)は結果に含みません。
	FindByStaffUserID(ctx context.Context, staffUserID, tenantID string) ([]*BlockedSlot, error)
	// FindByTimeRange は半開区間 [startTime, endTime) と重なるブロックを返します。
	// staffUserID を指定した場合、そのスタッフのブロックに加えて全体ブロックも含めます。
	FindByTimeRange(ctx context.Context, tenantID string, startTime, endTime time.Time, staffUserID *string) ([]*BlockedSlot, error)
}

// TenantDirectory はテナントの存在確認を提供する協調コンポーネントです。
type TenantDirectory interface {
	TenantExists(ctx context.Context, tenantID string) (bool, error)
}

// IDGenerator は一意な識別子を採番します。
type IDGenerator interface {
	NewID() string
}
