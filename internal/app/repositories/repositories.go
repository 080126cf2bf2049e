package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations the repositories issue.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so the same repository
// code runs directly on the pool or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	ActivityRepository   *ActivityRepository
	MembershipRepository *MembershipRepository
	AdminRepository      *AdminRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		ActivityRepository:   NewActivityRepository(db),
		MembershipRepository: NewMembershipRepository(db),
		AdminRepository:      NewAdminRepository(db),
	}
}
