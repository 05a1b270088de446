package domain

import (
	"fmt"
	"time"
)

// Validation errors for Comment.
var (
	ErrEmptyCommentAuthor = fmt.Errorf("%w: comment author cannot be empty", ErrValidation)
	ErrEmptyCommentBody   = fmt.Errorf("%w: comment body cannot be empty", ErrValidation)
)

// Comment is a user comment attached to a review. ID, CreatedAt and Votes
// are assigned by the store. Votes never goes below zero: decrements are
// clamped at the storage layer.
type Comment struct {
	ID        int       `json:"comment_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	ReviewID  int       `json:"review_id"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}

// NewComment creates a Comment by the given author on the given review.
// ID, CreatedAt and Votes are left for the store to assign.
// Returns an error if validation fails.
func NewComment(author, body string, reviewID int) (*Comment, error) {
	comment := &Comment{
		Author:   author,
		Body:     body,
		ReviewID: reviewID,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data. The review id is not
// checked here: whether the review exists is the store's question, and a
// bad id must come back as a referential failure, not a validation one.
func (c *Comment) Validate() error {
	if c.Author == "" {
		return ErrEmptyCommentAuthor
	}

	if c.Body == "" {
		return ErrEmptyCommentBody
	}

	return nil
}
