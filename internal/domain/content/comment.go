package content

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/domain/user"
)

const (
	CommentSubjectPost     = "post"
	CommentSubjectNews     = "news"
	CommentSubjectBusiness = "business"
)

func ValidCommentSubject(s string) error {
	switch s {
	case CommentSubjectPost, CommentSubjectNews, CommentSubjectBusiness:
		return nil
	default:
		return fmt.Errorf("unknown comment subject type %q", s)
	}
}

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID uuid.UUID  `gorm:"type:uuid;column:author_id;not null;index" json:"author_id"`
	Author   *user.User `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`

	// Polymorphic parent: the post, news item, or business commented on.
	SubjectType string    `gorm:"column:subject_type;not null;index:idx_comment_subject,priority:1" json:"subject_type"`
	SubjectID   uuid.UUID `gorm:"type:uuid;column:subject_id;not null;index:idx_comment_subject,priority:2" json:"subject_id"`

	Body string `gorm:"not null;column:body" json:"body"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Comment) TableName() string { return "comment" }
