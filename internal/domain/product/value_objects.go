package product

import (
	"strings"
	"unicode/utf8"

	"marketplace-api/internal/pkg/errs"
)

const (
	MaxTitleLength    = 100
	MaxContentLength  = 2000
	MaxLocationLength = 100
)

var (
	ErrEmptyTitle       = errs.NewKind("title cannot be empty", errs.ErrValidation)
	ErrTitleTooLong     = errs.NewKind("title must be at most 100 characters", errs.ErrValidation)
	ErrEmptyContent     = errs.NewKind("content cannot be empty", errs.ErrValidation)
	ErrContentTooLong   = errs.NewKind("content must be at most 2000 characters", errs.ErrValidation)
	ErrEmptyLocation    = errs.NewKind("location cannot be empty", errs.ErrValidation)
	ErrLocationTooLong  = errs.NewKind("location must be at most 100 characters", errs.ErrValidation)
	ErrNegativePrice    = errs.NewKind("price cannot be negative", errs.ErrValidation)
	ErrInvalidStatus    = errs.NewKind("invalid product status", errs.ErrValidation)
	ErrInvalidImageURL  = errs.NewKind("image url is not valid", errs.ErrValidation)
	ErrProductNotFound  = errs.NewKind("product not found", errs.ErrNotFound)
	ErrNotProductSeller = errs.NewKind("only the seller can modify this product", errs.ErrPermissionDenied)
	ErrSaleLocked       = errs.NewKind("product has a confirmed sale and cannot leave the sold status", errs.ErrConflict)
)

// boundedText trims s and checks it is non-empty and within max runes.
func boundedText(s string, max int, errEmpty, errTooLong error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmpty
	}
	if utf8.RuneCountInString(s) > max {
		return "", errTooLong
	}
	return s, nil
}

type Title struct{ value string }

func NewTitle(s string) (Title, error) {
	v, err := boundedText(s, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return Title{}, err
	}
	return Title{value: v}, nil
}

func (t Title) String() string { return t.value }

type Content struct{ value string }

func NewContent(s string) (Content, error) {
	v, err := boundedText(s, MaxContentLength, ErrEmptyContent, ErrContentTooLong)
	if err != nil {
		return Content{}, err
	}
	return Content{value: v}, nil
}

func (c Content) String() string { return c.value }

type Location struct{ value string }

func NewLocation(s string) (Location, error) {
	v, err := boundedText(s, MaxLocationLength, ErrEmptyLocation, ErrLocationTooLong)
	if err != nil {
		return Location{}, err
	}
	return Location{value: v}, nil
}

func (l Location) String() string { return l.value }

// Price is a whole amount in won.
type Price struct{ value int64 }

func NewPrice(v int64) (Price, error) {
	if v < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() int64 { return p.value }
