package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra/readstore"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy covers serialization failures and deadlocks only; every other
// error is returned from the first attempt.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 50 * time.Millisecond}

func (p retryPolicy) retryable(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

// backoff doubles per attempt with up to 50% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := p.base << attempt
	return d + rand.N(d/2+1)
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: defaultRetryPolicy,
	}
}

// Within runs fn in a READ COMMITTED transaction. Booking decisions rely on
// the version column rather than the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if !u.retry.retryable(err, attempt) {
			if isRetryableError(err) {
				slog.ErrorContext(ctx, "transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo     *repository.BookingRepository
	itemRepo        *repository.ItemRepository
	userRepo        *repository.UserRepository
	commentRepo     *repository.CommentRepository
	itemRequestRepo *repository.ItemRequestRepository
	commandReads    *commandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) bookings() *repository.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) items() *repository.ItemRepository {
	if t.itemRepo == nil {
		t.itemRepo = repository.NewItemRepository(t.uow.q, t.dbtx)
	}
	return t.itemRepo
}

func (t *pgTx) users() *repository.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	return t.bookings()
}

func (t *pgTx) Items() shared.ItemRepository {
	return t.items()
}

func (t *pgTx) Users() shared.UserRepository {
	return t.users()
}

func (t *pgTx) Comments() shared.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository(t.uow.q)
	}
	return t.commentRepo
}

func (t *pgTx) ItemRequests() shared.ItemRequestRepository {
	if t.itemRequestRepo == nil {
		t.itemRequestRepo = repository.NewItemRequestRepository(t.uow.q)
	}
	return t.itemRequestRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:      t.uow,
			dbtx:     t.dbtx,
			bookings: t.bookings(),
			items:    t.items(),
			users:    t.users(),
		}
	}
	return t.commandReads
}

// commandReads loads aggregates through the write repositories so reads inside
// Within see the transaction's own writes.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	bookings *repository.BookingRepository
	items    *repository.ItemRepository
	users    *repository.UserRepository

	// Lazy-initialized readstores
	requestStore *readstore.ItemRequestReadStore
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, id)
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.items.FindByID(ctx, id)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.users.FindByID(ctx, id)
}

func (r *commandReads) ItemRequestByID(ctx context.Context, id uuid.UUID) (*shared.ItemRequestSnapshot, error) {
	if r.requestStore == nil {
		r.requestStore = readstore.NewItemRequestReadStore(r.uow.q, r.dbtx)
	}

	req, err := r.requestStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ItemRequestSnapshot{
		ID:          req.ID,
		RequesterID: req.RequesterID,
	}
	return snapshot, nil
}
