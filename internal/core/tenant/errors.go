package tenant

import "errors"

var (
	// ErrTenantNotFound はテナントが存在しない場合に返却されます。
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrInvalidName はテナント名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("invalid page token")
)
