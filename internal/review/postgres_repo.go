package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, book_id, user_id, rating, comment, created_at, updated_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

func scanReview(row pgx.Row) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Review{}, ErrNotFound
	}
	return rv, err
}

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
	INSERT INTO reviews (book_id, user_id, rating, comment)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, rv.BookID, rv.UserID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyReviewed
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Review, error) {
	if !validIDs(id) {
		return Review{}, ErrNotFound
	}
	const query = `SELECT ` + selectColumns + ` FROM reviews WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanReview(r.db.QueryRow(timeoutCtx, query, id))
}

func (r *PostgresRepo) FindByBookAndUser(ctx context.Context, bookID, userID string) (Review, error) {
	if !validIDs(bookID, userID) {
		return Review{}, ErrNotFound
	}
	const query = `SELECT ` + selectColumns + ` FROM reviews WHERE book_id = $1 AND user_id = $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanReview(r.db.QueryRow(timeoutCtx, query, bookID, userID))
}

func (r *PostgresRepo) Update(ctx context.Context, rv *Review) error {
	if !validIDs(rv.ID) {
		return ErrNotFound
	}
	const query = `
	UPDATE reviews
	SET rating = $2, comment = $3, updated_at = now()
	WHERE id = $1
	RETURNING updated_at`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, rv.ID, rv.Rating, rv.Comment).Scan(&rv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if !validIDs(id) {
		return ErrNotFound
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, int, error) {
	if !validIDs(bookID) {
		return []Review{}, 0, nil
	}

	var total int
	countCtx, cancelCount := r.withTimeout(ctx)
	defer cancelCount()
	if err := r.db.QueryRow(countCtx, `SELECT COUNT(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT ` + selectColumns + `
	FROM reviews
	WHERE book_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2 OFFSET $3`
	dataCtx, cancelData := r.withTimeout(ctx)
	defer cancelData()
	rows, err := r.db.Query(dataCtx, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepo) ListRatings(ctx context.Context, bookID string) ([]float64, error) {
	if !validIDs(bookID) {
		return nil, nil
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT rating FROM reviews WHERE book_id = $1`, bookID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[float64])
}
