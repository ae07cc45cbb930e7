package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	// Stored object key inside the storage backend, not a public URL.
	FileKey  string `gorm:"type:text;not null" json:"file_key"`
	FileName string `gorm:"size:255;not null" json:"file_name"`
	FileSize int64  `json:"file_size"`

	// Categorization, all required.
	Branch   string `gorm:"size:100;not null;index:idx_notes_category" json:"branch"`
	Semester string `gorm:"size:20;not null;index:idx_notes_category" json:"semester"`
	Subject  string `gorm:"size:150;not null;index:idx_notes_category" json:"subject"`
	Module   string `gorm:"size:50;not null;index:idx_notes_category" json:"module"`

	UploaderID *uuid.UUID `gorm:"type:uuid" json:"uploader_id,omitempty"`
	Uploader   *User      `gorm:"foreignKey:UploaderID;constraint:OnDelete:SET NULL;" json:"uploader,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
