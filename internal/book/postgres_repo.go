package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, title, author, genre, average_rating, total_reviews, created_at, updated_at`

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

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.AverageRating, &b.TotalReviews, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()
	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
	INSERT INTO books (title, author, genre)
	VALUES ($1, $2, $3)
	RETURNING ` + selectColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	created, err := scanBook(r.db.QueryRow(timeoutCtx, query, b.Title, b.Author, b.Genre))
	if err != nil {
		return err
	}
	*b = created
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrNotFound
	}
	const query = `SELECT ` + selectColumns + ` FROM books WHERE id = $1 LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author = $%d", argn))
		args = append(args, q.Author)
		argn++
	}
	if q.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre = $%d", argn))
		args = append(args, q.Genre)
		argn++
	}
	where := "WHERE " + strings.Join(clauses, " AND ")

	var total int
	countCtx, cancelCount := r.withTimeout(ctx)
	defer cancelCount()
	if err := r.db.QueryRow(countCtx, "SELECT COUNT(*) FROM books "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, argn, argn+1)
	args = append(args, q.Limit, q.Offset)

	dataCtx, cancelData := r.withTimeout(ctx)
	defer cancelData()
	rows, err := r.db.Query(dataCtx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// Search matches text literally and case-insensitively against title or author.
func (r *PostgresRepo) Search(ctx context.Context, text string, limit int) ([]Book, error) {
	const query = `
	SELECT ` + selectColumns + `
	FROM books
	WHERE title ILIKE $1 ESCAPE '\' OR author ILIKE $1 ESCAPE '\'
	ORDER BY created_at DESC, id DESC
	LIMIT $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, "%"+EscapeLike(text)+"%", limit)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *PostgresRepo) UpdateRatingSummary(ctx context.Context, id string, average float64, total int) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	const query = `
	UPDATE books
	SET average_rating = $2, total_reviews = $3, updated_at = now()
	WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, average, total)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so text matches literally.
func EscapeLike(text string) string {
	return likeEscaper.Replace(text)
}
