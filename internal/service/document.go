package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
	"ubuntuhub/internal/storage"
)

// DocumentService defines the use cases for organization attachments.
type DocumentService interface {
	// Upload uploads the content to object storage, saves metadata to DB, and rolls back storage if DB save fails.
	// - originalFilename is used to extract the extension; the stored filename is UUID + original extension.
	Upload(ctx context.Context, organizationID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Document, error)

	// List returns documents using limit/offset and a total count. An empty organizationID lists all.
	List(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Document], error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes a document by ID from both storage and repository.
	Delete(ctx context.Context, id string) error

	// DownloadURL returns a presigned URL for the document content.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Open streams the document content from storage. The caller closes the reader.
	Open(ctx context.Context, id string) (*model.Document, io.ReadCloser, error)
}

type documentService struct {
	store         storage.Storage
	repo          repository.DocumentRepository
	presignExpiry time.Duration
	now           func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, presignExpiry time.Duration) DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &documentService{store: store, repo: repo, presignExpiry: presignExpiry, now: utcNow}
}

func (s *documentService) Upload(ctx context.Context, organizationID string, r io.Reader, originalFilename string, contentType string, size int64) (doc *model.Document, err error) {
	ctx, span := startSpan(ctx, "DocumentService.Upload")
	defer func() { endSpan(span, err) }()

	if r == nil {
		return nil, ErrReaderNil
	}
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	originalFilename = filepath.Base(strings.TrimSpace(originalFilename))
	if originalFilename == "." || originalFilename == string(filepath.Separator) {
		originalFilename = ""
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	genName := uuid.NewString() + ext
	key := storage.DocumentKey(organizationID, genName)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Document{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Filename:       genName,
		OriginalName:   originalFilename,
		StoragePath:    objInfo.Key,
		Size:           objInfo.Size,
		ContentType:    objInfo.ContentType,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %w", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Document], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, organizationID, pq)
	if err != nil {
		return nil, err
	}
	return listResult(res, pq), nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Storage first; a failure keeps the row so the object stays reachable.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, doc.StoragePath, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

func (s *documentService) Open(ctx context.Context, id string) (*model.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, info, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open object: %w", err)
	}
	if doc.ContentType == "" {
		doc.ContentType = info.ContentType
	}
	if info.Size > 0 {
		doc.Size = info.Size
	}
	return doc, rc, nil
}
