package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/linkstash/linkstash/collections/models"
	"github.com/linkstash/linkstash/internal/database/postgres"
)

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

const collectionColumns = `id, space_id, name, description, icon, order_index, view_mode, created_at, updated_at`

func (r *postgresRepository) Find(ctx context.Context, filter ListFilter) ([]models.Collection, error) {
	prefix := r.schemaPrefix()

	var query string
	var args []interface{}

	switch {
	case filter.SpaceID != "":
		query = fmt.Sprintf(`
			SELECT `+collectionColumns+`
			FROM %scollections
			WHERE space_id = $1
			ORDER BY order_index ASC
		`, prefix)
		args = []interface{}{filter.SpaceID}
	case filter.WorkspaceID != "":
		query = fmt.Sprintf(`
			SELECT c.id, c.space_id, c.name, c.description, c.icon, c.order_index, c.view_mode, c.created_at, c.updated_at
			FROM %scollections c
			JOIN %sspaces s ON s.id = c.space_id
			WHERE s.workspace_id = $1
			ORDER BY c.order_index ASC
		`, prefix, prefix)
		args = []interface{}{filter.WorkspaceID}
	default:
		query = fmt.Sprintf(`
			SELECT `+collectionColumns+`
			FROM %scollections
			ORDER BY order_index ASC
		`, prefix)
	}

	collections := []models.Collection{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &collections, query, args...); err != nil {
		return nil, fmt.Errorf("find collections: %w", err)
	}

	return collections, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	query := fmt.Sprintf(`
		SELECT `+collectionColumns+`
		FROM %scollections
		WHERE id = $1
	`, r.schemaPrefix())

	var collection models.Collection
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &collection, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find collection: %w", err)
	}

	return &collection, nil
}

func (r *postgresRepository) Create(ctx context.Context, collection *models.Collection) error {
	now := time.Now().UTC()
	if collection.CreatedAt.IsZero() {
		collection.CreatedAt = now
	}
	if collection.UpdatedAt.IsZero() {
		collection.UpdatedAt = now
	}

	query := fmt.Sprintf(`
		INSERT INTO %scollections (id, space_id, name, description, icon, order_index, view_mode, created_at, updated_at)
		VALUES (:id, :space_id, :name, :description, :icon, :order_index, :view_mode, :created_at, :updated_at)
	`, r.schemaPrefix())

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, collection)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, update *models.UpdateCollectionRequest) (*models.Collection, error) {
	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Icon != nil {
		appendSet("icon", *update.Icon)
	}
	if update.OrderIndex != nil {
		appendSet("order_index", *update.OrderIndex)
	}
	if update.ViewMode != nil {
		appendSet("view_mode", string(*update.ViewMode))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %scollections
		SET %s
		WHERE id = $%d
		RETURNING `+collectionColumns,
		r.schemaPrefix(), strings.Join(set, ", "), len(args))

	var collection models.Collection
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &collection, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update collection: %w", err)
	}

	return &collection, nil
}

// DeleteCascade removes bookmarks first, then the collection, in one
// transaction so a mid-sequence failure cannot orphan bookmark rows.
func (r *postgresRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	tx, err := r.client.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete collection: %w", err)
	}
	defer tx.Rollback()

	prefix := r.schemaPrefix()

	deleteBookmarks := fmt.Sprintf(`DELETE FROM %sbookmarks WHERE collection_id = $1`, prefix)
	if _, err := tx.ExecContext(ctx, deleteBookmarks, id); err != nil {
		return false, fmt.Errorf("delete collection bookmarks: %w", err)
	}

	deleteCollection := fmt.Sprintf(`DELETE FROM %scollections WHERE id = $1`, prefix)
	result, err := tx.ExecContext(ctx, deleteCollection, id)
	if err != nil {
		return false, fmt.Errorf("delete collection: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete collection: %w", err)
	}

	return rows > 0, nil
}

func (r *postgresRepository) NextOrderIndex(ctx context.Context, spaceID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(order_index) + 1, 0)
		FROM %scollections
		WHERE space_id = $1
	`, r.schemaPrefix())

	var next int
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &next, query, spaceID); err != nil {
		return 0, fmt.Errorf("next collection order index: %w", err)
	}

	return next, nil
}
