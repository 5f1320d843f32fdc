package blockedslot

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxReasonLength は理由に設定できる最大文字数です。
const MaxReasonLength = 500

// BlockedSlot は予約を受け付けない時間帯を表す値オブジェクトです。
// NewBlockedSlot で検証済みのインスタンスのみ生成でき、生成後は変更できません。
type BlockedSlot struct {
	id          string
	tenantID    string
	staffUserID *string
	startTime   time.Time
	endTime     time.Time
	reason      *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBlockedSlotParams は BlockedSlot 生成時の入力です。
// StaffUserID が nil の場合はテナント全体に適用されるブロック(全体ブロック)になります。
type NewBlockedSlotParams struct {
	ID          string
	TenantID    string
	StaffUserID *string
	StartTime   time.Time
	EndTime     time.Time
	Reason      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBlockedSlot は不変条件を検証して BlockedSlot を生成します。
// 検証はテナント ID、時間帯、理由の長さ、日時整合性の順に行い、最初の違反で失敗します。
func NewBlockedSlot(params NewBlockedSlotParams) (*BlockedSlot, error) {
	tenantID := strings.TrimSpace(params.TenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	if !params.EndTime.After(params.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	// 長さは正規化前に、与えられた文字列のルーン数で数えます。
	if params.Reason != nil && utf8.RuneCountInString(*params.Reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	reason := normalizeOptional(params.Reason)

	if params.UpdatedAt.Before(params.CreatedAt) {
		return nil, ErrInvalidDates
	}

	return &BlockedSlot{
		id:          params.ID,
		tenantID:    tenantID,
		staffUserID: normalizeOptional(params.StaffUserID),
		startTime:   params.StartTime,
		endTime:     params.EndTime,
		reason:      reason,
		createdAt:   params.CreatedAt,
		updatedAt:   params.UpdatedAt,
	}, nil
}

// ID はブロックの識別子を返します。
func (b *BlockedSlot) ID() string {
	return b.id
}

// TenantID は所有テナントの ID を返します。
func (b *BlockedSlot) TenantID() string {
	return b.tenantID
}

// StaffUserID は対象スタッフの ID を返します。全体ブロックの場合は nil です。
func (b *BlockedSlot) StaffUserID() *string {
	return cloneString(b.staffUserID)
}

// StartTime はブロック開始日時を返します。
func (b *BlockedSlot) StartTime() time.Time {
	return b.startTime
}

// EndTime はブロック終了日時を返します。
func (b *BlockedSlot) EndTime() time.Time {
	return b.endTime
}

// Reason はブロック理由を返します。未設定の場合は nil です。
func (b *BlockedSlot) Reason() *string {
	return cloneString(b.reason)
}

// CreatedAt は作成日時を返します。
func (b *BlockedSlot) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt は更新日時を返します。
func (b *BlockedSlot) UpdatedAt() time.Time {
	return b.updatedAt
}

// IsGeneral はテナント全体に適用されるブロックかどうかを返します。
func (b *BlockedSlot) IsGeneral() bool {
	return b.staffUserID == nil
}

// AppliesToStaff は指定スタッフの予約可否判定にこのブロックが影響するかを返します。
// 全体ブロックはどのスタッフに対しても適用されます。
func (b *BlockedSlot) AppliesToStaff(staffUserID string) bool {
	if b.staffUserID == nil {
		return true
	}
	return *b.staffUserID == staffUserID
}

// Overlaps は半開区間 [start, end) とこのブロックが重なるかを返します。
// 端点が接しているだけの場合は重なりとみなしません。
func (b *BlockedSlot) Overlaps(start, end time.Time) bool {
	return start.Before(b.endTime) && end.After(b.startTime)
}

// ContainedIn はこのブロックが区間 [start, end] に完全に含まれるかを返します。
func (b *BlockedSlot) ContainedIn(start, end time.Time) bool {
	return !b.startTime.Before(start) && !b.endTime.After(end)
}

func normalizeOptional(raw *string) *string {
	if raw == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}

	value := trimmed
	return &value
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
