package domain

import "time"

const (
	CommentMinLength = 50
	CommentMaxLength = 300

	// DisplayedCommentCount caps the review list projection.
	DisplayedCommentCount = 10
)

type Comment struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	User   Host      `json:"user"`
	Text   string    `json:"comment"`
	Rating int       `json:"rating"`
}
