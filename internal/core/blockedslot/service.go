package blockedslot

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はブロック時間帯に関するユースケースをまとめます。
type Service struct {
	repo    Repository
	tenants TenantDirectory
	idgen   IDGenerator
	clock   Clock
	tx      TransactionManager
}

// UseCase はブロック時間帯ユースケースの公開インターフェースです。
type UseCase interface {
	CreateBlockedSlot(ctx context.Context, in CreateBlockedSlotInput) (*BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, in DeleteBlockedSlotInput) error
	ListBlockedSlots(ctx context.Context, in ListBlockedSlotsInput) ([]*BlockedSlot, error)
	FindBlockedSlots(ctx context.Context, in FindBlockedSlotsInput) ([]*BlockedSlot, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tenants TenantDirectory, idgen IDGenerator, clock Clock, tx TransactionManager) *Service {
	if idgen == nil {
		idgen = uuidGenerator{}
	}
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tenants: tenants, idgen: idgen, clock: clock, tx: tx}
}

// CreateBlockedSlotInput はブロック作成時の入力です。
type CreateBlockedSlotInput struct {
	TenantID    string
	StaffUserID *string
	StartTime   time.Time
	EndTime     time.Time
	Reason      *string
}

// DeleteBlockedSlotInput はブロック削除時の入力です。
// TenantID は呼び出し側が主張する所有テナントで、認可判定に使用します。
type DeleteBlockedSlotInput struct {
	ID       string
	TenantID string
}

// ListBlockedSlotsInput は一覧取得時の入力です。
type ListBlockedSlotsInput struct {
	TenantID    string
	StaffUserID *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// FindBlockedSlotsInput は検索時の入力です。
type FindBlockedSlotsInput struct {
	TenantID    string
	StaffUserID *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// CreateBlockedSlot は新しいブロック時間帯を作成します。
// テナントの存在確認、重複判定、エンティティ検証の順に行い、最初の失敗で中断します。
func (s *Service) CreateBlockedSlot(ctx context.Context, in CreateBlockedSlotInput) (*BlockedSlot, error) {
	tenantID := strings.TrimSpace(in.TenantID)

	// 空のスタッフ ID を nil に正規化すると全体ブロックとして登録されてしまうため、
	// 指定されているのに空の場合は拒否します。
	if in.StaffUserID != nil && strings.TrimSpace(*in.StaffUserID) == "" {
		return nil, ErrInvalidStaffUserID
	}
	staffUserID := normalizeOptional(in.StaffUserID)

	var created *BlockedSlot
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		exists, err := s.tenants.TenantExists(txCtx, tenantID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTenantNotFound
		}

		conflicts, err := s.repo.FindByTimeRange(txCtx, tenantID, in.StartTime, in.EndTime, staffUserID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrOverlappingSlot
		}

		now := s.clock.Now()
		slot, err := NewBlockedSlot(NewBlockedSlotParams{
			ID:          s.idgen.NewID(),
			TenantID:    tenantID,
			StaffUserID: staffUserID,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Reason:      in.Reason,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}

		result, err := s.repo.Create(txCtx, slot)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// DeleteBlockedSlot はブロック時間帯を削除します。
// 存在確認と所有テナントの一致確認を行い、どちらかが失敗した場合は削除しません。
func (s *Service) DeleteBlockedSlot(ctx context.Context, in DeleteBlockedSlotInput) error {
	// 空の ID は検索しても見つからないため、ストレージに問い合わせずに not found とします。
	if strings.TrimSpace(in.ID) == "" {
		return ErrBlockedSlotNotFound
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if existing.TenantID() != in.TenantID {
			return ErrSlotTenantMismatch
		}

		return s.repo.Delete(txCtx, in.ID)
	})
}

// ListBlockedSlots は条件に応じて最も限定的なリポジトリクエリに振り分けて一覧を取得します。
// 期間指定時は重なり判定(全体ブロックを含む)、スタッフのみ指定時は完全一致で検索します。
func (s *Service) ListBlockedSlots(ctx context.Context, in ListBlockedSlotsInput) ([]*BlockedSlot, error) {
	tenantID := strings.TrimSpace(in.TenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	staffUserID := normalizeOptional(in.StaffUserID)

	var slots []*BlockedSlot
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		switch {
		case in.StartTime != nil && in.EndTime != nil:
			slots, err = s.repo.FindByTimeRange(txCtx, tenantID, *in.StartTime, *in.EndTime, staffUserID)
		case staffUserID != nil:
			slots, err = s.repo.FindByStaffUserID(txCtx, *staffUserID, tenantID)
		default:
			slots, err = s.repo.FindByTenantID(txCtx, tenantID)
		}
		return err
	}); err != nil {
		return nil, err
	}

	return slots, nil
}

// FindBlockedSlots はテナントの全ブロックを取得した上でアプリケーション側で絞り込みます。
// 期間を両方指定した場合は重なりではなく包含(ブロックが期間内に完全に収まること)で判定します。
// この点が ListBlockedSlots の期間指定と意図的に異なるため、挙動を変更する場合は両方の呼び出し元の確認が必要です。
func (s *Service) FindBlockedSlots(ctx context.Context, in FindBlockedSlotsInput) ([]*BlockedSlot, error) {
	tenantID := strings.TrimSpace(in.TenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	staffUserID := normalizeOptional(in.StaffUserID)

	var all []*BlockedSlot
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByTenantID(txCtx, tenantID)
		if err != nil {
			return err
		}
		all = result
		return nil
	}); err != nil {
		return nil, err
	}

	filtered := make([]*BlockedSlot, 0, len(all))
	for _, slot := range all {
		if staffUserID != nil {
			sid := slot.StaffUserID()
			if sid == nil || *sid != *staffUserID {
				continue
			}
		}
		if in.StartTime != nil && in.EndTime != nil && !slot.ContainedIn(*in.StartTime, *in.EndTime) {
			continue
		}
		filtered = append(filtered, slot)
	}

	return filtered, nil
}
