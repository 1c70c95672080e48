package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/internal/database/postgres"
)

// ErrForeignBookmarks marks a reorder request naming ids outside the
// target collection. The service maps it to a validation failure.
var ErrForeignBookmarks = errors.New("reorder ids do not match collection membership")

type postgresRepository struct {
	client *postgres.Client
	schema string
}

// NewPostgresRepository creates a repository using the default schema.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client, schema: ""}
}

// NewPostgresRepositoryWithSchema creates a repository using a specific schema.
func NewPostgresRepositoryWithSchema(client *postgres.Client, schema string) Repository {
	return &postgresRepository{client: client, schema: schema}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresRepository) schemaPrefix() string {
	if r.schema == "" {
		return ""
	}
	return r.schema + "."
}

func (r *postgresRepository) prefixSchema(query string) string {
	return fmt.Sprintf(query, r.schemaPrefix())
}

const bookmarkColumns = `id, collection_id, title, url, description, favicon, preview, tags, is_pinned, order_index, created_at, updated_at`

func qualifiedBookmarkColumns(alias string) string {
	cols := strings.Split(bookmarkColumns, ", ")
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}

func (r *postgresRepository) Find(ctx context.Context, filter ListFilter) ([]models.Bookmark, error) {
	var (
		query string
		args  []interface{}
	)

	switch {
	case filter.CollectionID != "":
		query = `
			SELECT ` + bookmarkColumns + `
			FROM %sbookmarks
			WHERE collection_id = $1
			ORDER BY order_index ASC, created_at DESC
		`
		args = append(args, filter.CollectionID)
	case filter.SpaceID != "":
		prefix := r.schemaPrefix()
		query = fmt.Sprintf(`
			SELECT `+qualifiedBookmarkColumns("b")+`
			FROM %sbookmarks b
			JOIN %scollections c ON c.id = b.collection_id
			WHERE c.space_id = $1
			ORDER BY b.order_index ASC, b.created_at DESC
		`, prefix, prefix)
		args = append(args, filter.SpaceID)

		bookmarks := []models.Bookmark{}
		if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarks, query, args...); err != nil {
			return nil, fmt.Errorf("find bookmarks by space: %w", err)
		}
		return bookmarks, nil
	default:
		query = `
			SELECT ` + bookmarkColumns + `
			FROM %sbookmarks
			ORDER BY order_index ASC, created_at DESC
		`
	}

	bookmarks := []models.Bookmark{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarks, r.prefixSchema(query), args...); err != nil {
		return nil, fmt.Errorf("find bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*models.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM %sbookmarks
		WHERE id = $1
	`

	var bookmark models.Bookmark
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &bookmark, r.prefixSchema(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}

	return &bookmark, nil
}

func (r *postgresRepository) Search(ctx context.Context, search string) ([]models.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM %sbookmarks
		WHERE title ILIKE $1 OR description ILIKE $1 OR url ILIKE $1
		ORDER BY updated_at DESC
	`

	pattern := "%" + search + "%"
	bookmarks := []models.Bookmark{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarks, r.prefixSchema(query), pattern); err != nil {
		return nil, fmt.Errorf("search bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *postgresRepository) FindPinned(ctx context.Context) ([]models.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM %sbookmarks
		WHERE is_pinned = true
		ORDER BY updated_at DESC
	`

	bookmarks := []models.Bookmark{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarks, r.prefixSchema(query)); err != nil {
		return nil, fmt.Errorf("find pinned bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *postgresRepository) FindRecent(ctx context.Context, limit int) ([]models.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM %sbookmarks
		ORDER BY updated_at DESC
		LIMIT $1
	`

	bookmarks := []models.Bookmark{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarks, r.prefixSchema(query), limit); err != nil {
		return nil, fmt.Errorf("find recent bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *postgresRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	now := time.Now().UTC()
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = now
	}
	if bookmark.UpdatedAt.IsZero() {
		bookmark.UpdatedAt = now
	}
	if bookmark.Tags == nil {
		bookmark.Tags = pq.StringArray{}
	}

	query := `
		INSERT INTO %sbookmarks (id, collection_id, title, url, description, favicon, preview, tags, is_pinned, order_index, created_at, updated_at)
		VALUES (:id, :collection_id, :title, :url, :description, :favicon, :preview, :tags, :is_pinned, :order_index, :created_at, :updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), r.prefixSchema(query), bookmark)
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, update *models.UpdateBookmarkRequest) (*models.Bookmark, error) {
	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.CollectionID != nil {
		appendSet("collection_id", *update.CollectionID)
	}
	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.URL != nil {
		appendSet("url", *update.URL)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Favicon != nil {
		appendSet("favicon", *update.Favicon)
	}
	if update.Preview != nil {
		appendSet("preview", *update.Preview)
	}
	if update.Tags != nil {
		appendSet("tags", pq.StringArray(*update.Tags))
	}
	if update.IsPinned != nil {
		appendSet("is_pinned", *update.IsPinned)
	}
	if update.OrderIndex != nil {
		appendSet("order_index", *update.OrderIndex)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %sbookmarks
		SET %s
		WHERE id = $%d
		RETURNING `+bookmarkColumns,
		r.schemaPrefix(), strings.Join(set, ", "), len(args))

	var bookmark models.Bookmark
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &bookmark, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update bookmark: %w", err)
	}

	return &bookmark, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM %sbookmarks WHERE id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, r.prefixSchema(query), id)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

// Reorder locks the collection's rows, verifies the requested ids are
// exactly a subset of its members, then rewrites order_index to the
// position of each id in the request. Any failure rolls the whole batch
// back, so a half-applied ordering is never observable.
func (r *postgresRepository) Reorder(ctx context.Context, collectionID string, ids []string) error {
	tx, err := r.client.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	prefix := r.schemaPrefix()

	memberQuery := fmt.Sprintf(`
		SELECT id FROM %sbookmarks
		WHERE collection_id = $1
		FOR UPDATE
	`, prefix)

	var memberIDs []string
	if err := tx.SelectContext(ctx, &memberIDs, memberQuery, collectionID); err != nil {
		return fmt.Errorf("lock collection bookmarks: %w", err)
	}

	members := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = true
	}
	for _, id := range ids {
		if !members[id] {
			return ErrForeignBookmarks
		}
	}

	updateQuery := fmt.Sprintf(`
		UPDATE %sbookmarks
		SET order_index = $1, updated_at = $2
		WHERE id = $3 AND collection_id = $4
	`, prefix)

	now := time.Now().UTC()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, updateQuery, i, now, id, collectionID); err != nil {
			return fmt.Errorf("reorder bookmark %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}

	return nil
}

func (r *postgresRepository) CountByCollection(ctx context.Context, collectionID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM %sbookmarks
		WHERE collection_id = $1
	`

	var count int
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, r.prefixSchema(query), collectionID); err != nil {
		return 0, fmt.Errorf("count collection bookmarks: %w", err)
	}

	return count, nil
}
