package repository

import (
	"context"

	"gorm.io/gorm"

	"filesmanager/internal/model"
)

// FileRepository defines file metadata persistence operations.
type FileRepository interface {
	Create(ctx context.Context, file *model.File) error
	FindByID(ctx context.Context, id string) (*model.File, error)
	FindByIDAndOwner(ctx context.Context, id, userID string) (*model.File, error)
	ListByOwner(ctx context.Context, userID, parentID string, offset, limit int) ([]model.File, error)
	UpdateVisibility(ctx context.Context, id string, isPublic bool) error
	Count(ctx context.Context) (int64, error)
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new GORM-backed file repository.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create inserts a new file record.
func (r *fileRepository) Create(ctx context.Context, file *model.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

// FindByID finds a file by ID regardless of owner.
func (r *fileRepository) FindByID(ctx context.Context, id string) (*model.File, error) {
	var file model.File
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error; err != nil {
		return nil, translate(err)
	}
	return &file, nil
}

// FindByIDAndOwner finds a file by ID only if it belongs to userID.
func (r *fileRepository) FindByIDAndOwner(ctx context.Context, id, userID string) (*model.File, error) {
	var file model.File
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&file).Error; err != nil {
		return nil, translate(err)
	}
	return &file, nil
}

// ListByOwner lists one page of userID's files under parentID in creation order.
func (r *fileRepository) ListByOwner(ctx context.Context, userID, parentID string, offset, limit int) ([]model.File, error) {
	files := make([]model.File, 0, limit)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND parent_id = ?", userID, parentID).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// UpdateVisibility sets the isPublic flag of a file. It returns ErrNotFound
// when no record has the given id.
func (r *fileRepository) UpdateVisibility(ctx context.Context, id string, isPublic bool) error {
	res := r.db.WithContext(ctx).Model(&model.File{}).
		Where("id = ?", id).
		Update("is_public", isPublic)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports changed rows only, so an unchanged flag looks like a miss.
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.File{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of file records.
func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.File{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
