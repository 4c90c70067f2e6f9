package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

var documentCols = []string{"id", "organization_id", "filename", "original_name", "storage_path", "size", "content_type", "created_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	now := time.Now().UTC()
	doc := &model.Document{
		ID:             "doc-1",
		OrganizationID: "org-1",
		Filename:       "doc-1.pdf",
		OriginalName:   "minutes.pdf",
		StoragePath:    "organizations/org-1/documents/doc-1.pdf",
		Size:           123,
		ContentType:    "application/pdf",
		CreatedAt:      now,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO documents").
			WithArgs(doc.ID, doc.OrganizationID, doc.Filename, doc.OriginalName, doc.StoragePath, doc.Size, doc.ContentType, doc.CreatedAt).
			WillReturnRows(sqlmock.NewRows(documentCols).
				AddRow(doc.ID, doc.OrganizationID, doc.Filename, doc.OriginalName, doc.StoragePath, doc.Size, doc.ContentType, doc.CreatedAt))

		got, err := NewDocumentPostgres(db).Create(context.Background(), doc)

		assert.NoError(t, err)
		assert.Equal(t, doc.StoragePath, got.StoragePath)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown organization", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO documents").
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err = NewDocumentPostgres(db).Create(context.Background(), doc)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM documents").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM documents WHERE (.+) ORDER BY").
		WithArgs("org-1", 10, 0).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow("doc-1", "org-1", "doc-1.txt", "a.txt", "organizations/org-1/documents/doc-1.txt", 100, "text/plain", time.Now()))

	res, err := NewDocumentPostgres(db).List(context.Background(), "org-1", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewDocumentPostgres(db).Delete(context.Background(), "doc-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
