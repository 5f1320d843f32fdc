// Package memory はブロック時間帯コアの参照実装となるインメモリ永続化を提供します。
// 状態はリポジトリインスタンスごとに保持され、テストや複数インスタンスの併用で共有されません。
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
)

// BlockedSlotRepository はスライスを背後に持つインメモリ実装です。
// 書き込みは直後の読み取りから可視です。CreateBlockedSlot の重複判定と挿入の間の
// 排他は行わないため、同一範囲への並行作成は重なったブロックを両方登録し得ます
// (本番向けには postgres 実装の直列化トランザクションを使用してください)。
type BlockedSlotRepository struct {
	mu    sync.RWMutex
	slots []*blockedslot.BlockedSlot
}

// NewBlockedSlotRepository は空の BlockedSlotRepository を生成します。
func NewBlockedSlotRepository() *BlockedSlotRepository {
	return &BlockedSlotRepository{}
}

// Create はブロックを登録順の末尾に保存し、同じエンティティを返します。
func (r *BlockedSlotRepository) Create(_ context.Context, slot *blockedslot.BlockedSlot) (*blockedslot.BlockedSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = append(r.slots, slot)
	return slot, nil
}

// Delete は ID の一致するブロックを取り除きます。存在しない場合も成功します。
func (r *BlockedSlotRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot.ID() == id {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

// FindByID は ID でブロックを検索します。
func (r *BlockedSlotRepository) FindByID(_ context.Context, id string) (*blockedslot.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, slot := range r.slots {
		if slot.ID() == id {
			return slot, nil
		}
	}
	return nil, blockedslot.ErrBlockedSlotNotFound
}

// FindByTenantID はテナントの全ブロックを登録順で返します。
func (r *BlockedSlotRepository) FindByTenantID(_ context.Context, tenantID string) ([]*blockedslot.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*blockedslot.BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() == tenantID {
			result = append(result, slot)
		}
	}
	return result, nil
}

// FindByStaffUserID はスタッフ ID とテナント ID の完全一致で検索します。
// 全体ブロックは含みません。
func (r *BlockedSlotRepository) FindByStaffUserID(_ context.Context, staffUserID, tenantID string) ([]*blockedslot.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*blockedslot.BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() != tenantID {
			continue
		}
		sid := slot.StaffUserID()
		if sid == nil || *sid != staffUserID {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

// FindByTimeRange は半開区間 [startTime, endTime) と重なるブロックを登録順で返します。
// staffUserID を指定した場合はそのスタッフのブロックと全体ブロックが対象です。
func (r *BlockedSlotRepository) FindByTimeRange(_ context.Context, tenantID string, startTime, endTime time.Time, staffUserID *string) ([]*blockedslot.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*blockedslot.BlockedSlot, 0)
	for _, slot := range r.slots {
		if slot.TenantID() != tenantID {
			continue
		}
		if staffUserID != nil && !slot.AppliesToStaff(*staffUserID) {
			continue
		}
		if !slot.Overlaps(startTime, endTime) {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}
