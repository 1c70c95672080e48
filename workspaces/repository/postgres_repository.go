package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/linkstash/linkstash/internal/database/postgres"
	"github.com/linkstash/linkstash/workspaces/models"
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

func (r *postgresRepository) prefixSchema(query string) string {
	if r.schema == "" {
		return fmt.Sprintf(query, "")
	}
	return fmt.Sprintf(query, r.schema+".")
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*models.Workspace, error) {
	query := `
		SELECT id, created_at, updated_at
		FROM %sworkspaces
		WHERE id = $1
	`

	var workspace models.Workspace
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &workspace, r.prefixSchema(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find workspace: %w", err)
	}

	return &workspace, nil
}

func (r *postgresRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	now := time.Now().UTC()
	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = now
	}
	if workspace.UpdatedAt.IsZero() {
		workspace.UpdatedAt = now
	}

	query := `
		INSERT INTO %sworkspaces (id, created_at, updated_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.getExecutor(ctx).ExecContext(ctx, r.prefixSchema(query), workspace.ID, workspace.CreatedAt, workspace.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert workspace: %w", err)
	}

	return nil
}
