package domain

import (
	"fmt"
	"time"
)

// DefaultReviewImgURL is applied when a review is created without an image.
const DefaultReviewImgURL = "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700"

// Validation errors for Review.
var (
	ErrEmptyReviewTitle    = fmt.Errorf("%w: review title cannot be empty", ErrValidation)
	ErrEmptyReviewDesigner = fmt.Errorf("%w: review designer cannot be empty", ErrValidation)
	ErrEmptyReviewOwner    = fmt.Errorf("%w: review owner cannot be empty", ErrValidation)
	ErrEmptyReviewBody     = fmt.Errorf("%w: review body cannot be empty", ErrValidation)
	ErrEmptyReviewCategory = fmt.Errorf("%w: review category cannot be empty", ErrValidation)
)

// Review is a full board-game review, including its body text and the
// comment count derived at read time. ID, CreatedAt and Votes are assigned
// by the store; CommentCount is never stored.
type Review struct {
	ID           int       `json:"review_id"`
	Title        string    `json:"title"`
	Designer     string    `json:"designer"`
	Owner        string    `json:"owner"`
	ReviewImgURL string    `json:"review_img_url"`
	ReviewBody   string    `json:"review_body"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

// ReviewSummary is the listing shape of a review: everything except the
// body text.
type ReviewSummary struct {
	ID           int       `json:"review_id"`
	Title        string    `json:"title"`
	Designer     string    `json:"designer"`
	Owner        string    `json:"owner"`
	ReviewImgURL string    `json:"review_img_url"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

// NewReview creates a Review from caller-supplied fields. An empty imgURL
// falls back to DefaultReviewImgURL. ID, CreatedAt, Votes and CommentCount
// are left for the store to assign.
// Returns an error if validation fails.
func NewReview(title, designer, owner, body, category, imgURL string) (*Review, error) {
	if imgURL == "" {
		imgURL = DefaultReviewImgURL
	}

	review := &Review{
		Title:        title,
		Designer:     designer,
		Owner:        owner,
		ReviewImgURL: imgURL,
		ReviewBody:   body,
		Category:     category,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.Title == "" {
		return ErrEmptyReviewTitle
	}

	if r.Designer == "" {
		return ErrEmptyReviewDesigner
	}

	if r.Owner == "" {
		return ErrEmptyReviewOwner
	}

	if r.ReviewBody == "" {
		return ErrEmptyReviewBody
	}

	if r.Category == "" {
		return ErrEmptyReviewCategory
	}

	return nil
}
