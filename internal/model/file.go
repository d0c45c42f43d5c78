package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileType is the kind of a file record.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// RootID is the parentId of records that live at the top level.
const RootID = "0"

// ThumbnailWidths lists the derivative widths generated for images.
var ThumbnailWidths = []int{500, 250, 100}

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// File is the metadata record of a folder, file or image.
type File struct {
	ID        string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" bson:"userId" gorm:"type:char(36);not null;index:idx_files_owner_parent"`
	Name      string    `json:"name" bson:"name" gorm:"size:255;not null"`
	Type      FileType  `json:"type" bson:"type" gorm:"size:16;not null"`
	IsPublic  bool      `json:"isPublic" bson:"isPublic" gorm:"not null"`
	ParentID  string    `json:"parentId" bson:"parentId" gorm:"size:36;not null;index:idx_files_owner_parent"`
	LocalPath string    `json:"localPath,omitempty" bson:"localPath,omitempty" gorm:"size:1024"`
	CreatedAt time.Time `json:"-" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets the UUID before creating the record.
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// IsFolder reports whether the record is a folder.
func (f *File) IsFolder() bool {
	return f.Type == FileTypeFolder
}

// ThumbnailPath returns where the derivative of the given width is stored.
func (f *File) ThumbnailPath(width int) string {
	return fmt.Sprintf("%s_%d", f.LocalPath, width)
}

// IsThumbnailWidth reports whether width is one of ThumbnailWidths.
func IsThumbnailWidth(width int) bool {
	for _, w := range ThumbnailWidths {
		if w == width {
			return true
		}
	}
	return false
}
