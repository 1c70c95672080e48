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
	"github.com/linkstash/linkstash/shares/models"
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

const shareColumns = `id, workspace_id, view_key, name, description, created_at, expires_at`

func (r *postgresRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Share, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM %sshares
		WHERE workspace_id = $1
		ORDER BY created_at DESC
	`

	shares := []models.Share{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &shares, r.prefixSchema(query), workspaceID); err != nil {
		return nil, fmt.Errorf("find shares: %w", err)
	}

	return shares, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*models.Share, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM %sshares
		WHERE id = $1
	`

	var share models.Share
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &share, r.prefixSchema(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find share: %w", err)
	}

	return &share, nil
}

func (r *postgresRepository) FindByViewKey(ctx context.Context, viewKey string) (*models.Share, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM %sshares
		WHERE view_key = $1
	`

	var share models.Share
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &share, r.prefixSchema(query), viewKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find share by view key: %w", err)
	}

	return &share, nil
}

func (r *postgresRepository) Create(ctx context.Context, share *models.Share) error {
	if share.CreatedAt.IsZero() {
		share.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO %sshares (id, workspace_id, view_key, name, description, created_at, expires_at)
		VALUES (:id, :workspace_id, :view_key, :name, :description, :created_at, :expires_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), r.prefixSchema(query), share)
	if err != nil {
		return fmt.Errorf("insert share: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, update *models.UpdateShareRequest) (*models.Share, error) {
	set := []string{}
	args := []interface{}{}

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
	if update.ExpiresAt != nil {
		appendSet("expires_at", *update.ExpiresAt)
	}

	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %sshares
		SET %s
		WHERE id = $%d
		RETURNING `+shareColumns,
		r.schemaPrefix(), strings.Join(set, ", "), len(args))

	var share models.Share
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &share, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update share: %w", err)
	}

	return &share, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM %sshares WHERE id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, r.prefixSchema(query), id)
	if err != nil {
		return false, fmt.Errorf("delete share: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}
