package review

import (
	"strings"
	"unicode/utf8"

	"marketplace-api/internal/pkg/errs"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating  = errs.NewKind("rating must be between 1 and 5", errs.ErrValidation)
	ErrCommentTooLong = errs.NewKind("comment exceeds maximum length", errs.ErrValidation)
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional. A blank comment is stored as absent.
type Comment struct {
	text  string
	valid bool
}

func NewComment(s *string) (Comment, error) {
	if s == nil {
		return Comment{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Comment{}, nil
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t, valid: true}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) Ptr() *string {
	if !c.valid {
		return nil
	}
	t := c.text
	return &t
}
