package blockedslot

import "errors"

var (
	// ErrInvalidTenantID はテナント ID が空の場合に返却されます。
	ErrInvalidTenantID = errors.New("blockedslot: invalid tenant id")
	// ErrInvalidStaffUserID はスタッフ ID が指定されているのに空の場合に返却されます。
	ErrInvalidStaffUserID = errors.New("blockedslot: invalid staff user id")
	// ErrInvalidTimeRange は終了日時が開始日時より後でない場合に返却されます。
	ErrInvalidTimeRange = errors.New("blockedslot: end time must be after start time")
	// ErrReasonTooLong は理由が最大文字数を超えた場合に返却されます。
	ErrReasonTooLong = errors.New("blockedslot: reason exceeds 500 characters")
	// ErrInvalidDates は更新日時が作成日時より前の場合に返却されます。
	ErrInvalidDates = errors.New("blockedslot: updated at must not be before created at")
	// ErrBlockedSlotNotFound はブロックが存在しない場合に返却されます。
	ErrBlockedSlotNotFound = errors.New("blockedslot: not found")
	// ErrTenantNotFound は参照先のテナントが存在しない場合に返却されます。
	ErrTenantNotFound = errors.New("blockedslot: tenant not found")
	// ErrOverlappingSlot は同じ適用範囲に重なるブロックが既に存在する場合に返却されます。
	ErrOverlappingSlot = errors.New("blockedslot: overlapping blocked slot exists")
	// ErrSlotTenantMismatch はブロックの所有テナントと指定テナントが一致しない場合に返却されます。
	ErrSlotTenantMismatch = errors.New("blockedslot: blocked slot does not belong to tenant")
)
