package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/scheduling-grpc-clean-arch/internal/core/tenant"
	pgdb "github.com/ogurasousui/scheduling-grpc-clean-arch/internal/platform/db/postgres"
)

const tenantColumns = `id, name, status, created_at, updated_at`

// TenantRepository は PostgreSQL を利用したテナント永続化の実装です。
// blockedslot.TenantDirectory としても利用できます。
type TenantRepository struct {
	pool pgdb.Queryer
}

// NewTenantRepository は TenantRepository を生成します。
func NewTenantRepository(pool pgdb.Queryer) *TenantRepository {
	return &TenantRepository{pool: pool}
}

// Create はテナントを新規作成します。ID は gen_random_uuid() で採番されます。
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO tenants (name, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING `+tenantColumns+`
    `,
		t.Name,
		string(t.Status),
		t.CreatedAt,
		t.UpdatedAt,
	)

	created, err := scanTenant(row)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindByID は ID でテナントを取得します。
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+tenantColumns+`
          FROM tenants
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanTenant(row)
}

// ExistsByID は ID のテナントが存在するかを返します。
func (r *TenantRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tenants WHERE id = $1)`, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// TenantExists は blockedslot.TenantDirectory を満たします。
func (r *TenantRepository) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	return r.ExistsByID(ctx, tenantID)
}

// List はテナントの一覧を取得します。
func (r *TenantRepository) List(ctx context.Context, filter tenant.ListTenantsFilter) ([]*tenant.Tenant, string, error) {
	if filter.Limit <= 0 {
		return nil, "", tenant.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", tenant.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	conditions := make([]string, 0, 1)

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status = "+placeholder)
		args = append(args, string(*filter.Status))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + tenantColumns + `
          FROM tenants` + whereClause + `
         ORDER BY created_at, id
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0, filter.Limit)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, "", err
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(tenants) == limitWithBuffer {
		tenants = tenants[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return tenants, nextToken, nil
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var (
		id        string
		name      string
		status    string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}

	return &tenant.Tenant{
		ID:        id,
		Name:      name,
		Status:    tenant.Status(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
