package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/blockedslot"
	pgdb "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const blockedSlotColumns = `id, tenant_id, staff_user_id, start_time, end_time, reason, created_at, updated_at`

// BlockedSlotRepository は PostgreSQL を利用したブロック時間帯永続化の実装です。
// 重複判定と挿入の競合はトランザクション層(Serializable)で直列化されます。
type BlockedSlotRepository struct {
	pool pgdb.Queryer
}

// NewBlockedSlotRepository は BlockedSlotRepository を生成します。
func NewBlockedSlotRepository(pool pgdb.Queryer) *BlockedSlotRepository {
	return &BlockedSlotRepository{pool: pool}
}

// Create はブロックを新規作成し、保存した行から再構築したエンティティを返します。
func (r *BlockedSlotRepository) Create(ctx context.Context, slot *blockedslot.BlockedSlot) (*blockedslot.BlockedSlot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO blocked_slots (id, tenant_id, staff_user_id, start_time, end_time, reason, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+blockedSlotColumns+`
    `,
		slot.ID(),
		slot.TenantID(),
		nullableString(slot.StaffUserID()),
		slot.StartTime(),
		slot.EndTime(),
		nullableString(slot.Reason()),
		slot.CreatedAt(),
		slot.UpdatedAt(),
	)

	created, err := scanBlockedSlot(row)
	if err != nil {
		return nil, translateBlockedSlotPgError(err)
	}
	return created, nil
}

// Delete は ID でブロックを削除します。対象が存在しない場合もエラーになりません。
func (r *BlockedSlotRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM blocked_slots WHERE id = $1`, id); err != nil {
		return translateBlockedSlotPgError(err)
	}
	return nil
}

// FindByID は ID でブロックを取得します。
func (r *BlockedSlotRepository) FindByID(ctx context.Context, id string) (*blockedslot.BlockedSlot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+blockedSlotColumns+`
          FROM blocked_slots
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanBlockedSlot(row)
	if err != nil {
		return nil, translateBlockedSlotPgError(err)
	}
	return found, nil
}

// FindByTenantID はテナントの全ブロックを返します。
// 到着順は created_at と id の昇順で近似します。
func (r *BlockedSlotRepository) FindByTenantID(ctx context.Context, tenantID string) ([]*blockedslot.BlockedSlot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+blockedSlotColumns+`
          FROM blocked_slots
         WHERE tenant_id = $1
         ORDER BY created_at, id
    `, tenantID)
	if err != nil {
		return nil, translateBlockedSlotPgError(err)
	}
	defer rows.Close()

	return collectBlockedSlots(rows)
}

// FindByStaffUserID はスタッフ ID とテナント ID の完全一致で検索します。
// staff_user_id が NULL の全体ブロックは対象外です。
func (r *BlockedSlotRepository) FindByStaffUserID(ctx context.Context, staffUserID, tenantID string) ([]*blockedslot.BlockedSlot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+blockedSlotColumns+`
          FROM blocked_slots
         WHERE tenant_id = $1 AND staff_user_id = $2
         ORDER BY created_at, id
    `, tenantID, staffUserID)
	if err != nil {
		return nil, translateBlockedSlotPgError(err)
	}
	defer rows.Close()

	return collectBlockedSlots(rows)
}

// FindByTimeRange は半開区間 [startTime, endTime) と重なるブロックを返します。
// staffUserID を指定した場合、そのスタッフのブロックに加えて全体ブロックも含めます。
func (r *BlockedSlotRepository) FindByTimeRange(ctx context.Context, tenantID string, startTime, endTime time.Time, staffUserID *string) ([]*blockedslot.BlockedSlot, error) {
	query := `
        SELECT ` + blockedSlotColumns + `
          FROM blocked_slots
         WHERE tenant_id = $1
           AND start_time < $3
           AND end_time > $2
    `
	args := []any{tenantID, startTime, endTime}

	if staffUserID != nil {
		query += ` AND (staff_user_id = $4 OR staff_user_id IS NULL)`
		args = append(args, *staffUserID)
	}

	query += ` ORDER BY created_at, id`

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateBlockedSlotPgError(err)
	}
	defer rows.Close()

	return collectBlockedSlots(rows)
}

func collectBlockedSlots(rows pgx.Rows) ([]*blockedslot.BlockedSlot, error) {
	slots := make([]*blockedslot.BlockedSlot, 0)
	for rows.Next() {
		slot, err := scanBlockedSlot(rows)
		if err != nil {
			return nil, translateBlockedSlotPgError(err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, translateBlockedSlotPgError(err)
	}

	return slots, nil
}

func scanBlockedSlot(row pgx.Row) (*blockedslot.BlockedSlot, error) {
	var (
		id          string
		tenantID    string
		staffUserID sql.NullString
		startTime   time.Time
		endTime     time.Time
		reason      sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&staffUserID,
		&startTime,
		&endTime,
		&reason,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blockedslot.ErrBlockedSlotNotFound
		}
		return nil, err
	}

	slot, err := blockedslot.NewBlockedSlot(blockedslot.NewBlockedSlotParams{
		ID:          id,
		TenantID:    tenantID,
		StaffUserID: nullStringPtr(staffUserID),
		StartTime:   startTime,
		EndTime:     endTime,
		Reason:      nullStringPtr(reason),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: rebuild blocked slot %s: %w", id, err)
	}
	return slot, nil
}

func translateBlockedSlotPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return blockedslot.ErrBlockedSlotNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return blockedslot.ErrTenantNotFound
		case checkViolationCode:
			return blockedslot.ErrInvalidTimeRange
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
