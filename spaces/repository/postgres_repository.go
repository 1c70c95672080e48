package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/linkstash/linkstash/internal/database/postgres"
	"github.com/linkstash/linkstash/spaces/models"
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

func (r *postgresRepository) prefixSchema(query string) string {
	return fmt.Sprintf(query, r.schemaPrefix())
}

const spaceColumns = `id, workspace_id, name, description, icon, order_index, created_at, updated_at`

func (r *postgresRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Space, error) {
	query := `
		SELECT ` + spaceColumns + `
		FROM %sspaces
		WHERE workspace_id = $1
		ORDER BY order_index ASC
	`

	spaces := []models.Space{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &spaces, r.prefixSchema(query), workspaceID); err != nil {
		return nil, fmt.Errorf("find spaces: %w", err)
	}

	return spaces, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*models.Space, error) {
	query := `
		SELECT ` + spaceColumns + `
		FROM %sspaces
		WHERE id = $1
	`

	var space models.Space
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &space, r.prefixSchema(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find space: %w", err)
	}

	return &space, nil
}

func (r *postgresRepository) Create(ctx context.Context, space *models.Space) error {
	now := time.Now().UTC()
	if space.CreatedAt.IsZero() {
		space.CreatedAt = now
	}
	if space.UpdatedAt.IsZero() {
		space.UpdatedAt = now
	}

	query := `
		INSERT INTO %sspaces (id, workspace_id, name, description, icon, order_index, created_at, updated_at)
		VALUES (:id, :workspace_id, :name, :description, :icon, :order_index, :created_at, :updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), r.prefixSchema(query), space)
	if err != nil {
		return fmt.Errorf("insert space: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, update *models.UpdateSpaceRequest) (*models.Space, error) {
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

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %sspaces
		SET %s
		WHERE id = $%d
		RETURNING `+spaceColumns,
		r.schemaPrefix(), strings.Join(set, ", "), len(args))

	var space models.Space
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &space, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update space: %w", err)
	}

	return &space, nil
}

// DeleteCascade orders the cascade itself (bookmarks, then collections, then
// the space) because the schema does not rely on ON DELETE CASCADE; the
// transaction keeps a mid-sequence failure from leaving orphans.
func (r *postgresRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	tx, err := r.client.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete space: %w", err)
	}
	defer tx.Rollback()

	prefix := r.schemaPrefix()

	deleteBookmarks := fmt.Sprintf(`
		DELETE FROM %sbookmarks
		WHERE collection_id IN (SELECT id FROM %scollections WHERE space_id = $1)
	`, prefix, prefix)
	if _, err := tx.ExecContext(ctx, deleteBookmarks, id); err != nil {
		return false, fmt.Errorf("delete space bookmarks: %w", err)
	}

	deleteCollections := fmt.Sprintf(`DELETE FROM %scollections WHERE space_id = $1`, prefix)
	if _, err := tx.ExecContext(ctx, deleteCollections, id); err != nil {
		return false, fmt.Errorf("delete space collections: %w", err)
	}

	deleteSpace := fmt.Sprintf(`DELETE FROM %sspaces WHERE id = $1`, prefix)
	result, err := tx.ExecContext(ctx, deleteSpace, id)
	if err != nil {
		return false, fmt.Errorf("delete space: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete space: %w", err)
	}

	return rows > 0, nil
}

func (r *postgresRepository) NextOrderIndex(ctx context.Context, workspaceID string) (int, error) {
	query := `
		SELECT COALESCE(MAX(order_index) + 1, 0)
		FROM %sspaces
		WHERE workspace_id = $1
	`

	var next int
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &next, r.prefixSchema(query), workspaceID); err != nil {
		return 0, fmt.Errorf("next space order index: %w", err)
	}

	return next, nil
}
