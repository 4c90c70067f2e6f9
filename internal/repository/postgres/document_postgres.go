package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, organization_id, filename, original_name, storage_path, size, content_type, created_at`

func scanDocument(s scanner) (*model.Document, error) {
	var d model.Document
	if err := s.Scan(
		&d.ID,
		&d.OrganizationID,
		&d.Filename,
		&d.OriginalName,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
// An unknown organization surfaces as sql.ErrNoRows.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	out, err := scanDocument(r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.OrganizationID,
		doc.Filename,
		doc.OriginalName,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		doc.CreatedAt,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents newest first using LIMIT/OFFSET pagination and a total count.
func (r *DocumentPostgres) List(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	// An empty organization id matches every row.
	const where = ` WHERE ($1 = '' OR organization_id::text = $1)`
	const qCount = `SELECT COUNT(*) FROM documents` + where
	const qList = `SELECT ` + documentColumns + ` FROM documents` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanDocument)
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
