package tenant

import "time"

// Status はテナントの状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Tenant は予約システムを利用する組織(テナント)エンティティです。
type Tenant struct {
	ID        string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
