package item

import (
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/errs"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	MaxCommentLength     = 2000
)

var (
	ErrInvalidName        = errs.Wrap(errs.ErrValidation, "item name must be 1-255 characters")
	ErrInvalidDescription = errs.Wrap(errs.ErrValidation, "item description must be 1-2000 characters")
	ErrEmptyComment       = errs.Wrap(errs.ErrValidation, "comment text is required")
	ErrCommentTooLong     = errs.Wrap(errs.ErrValidation, "comment text is too long")
	ErrNotOwner           = errs.Wrap(errs.ErrNotFound, "item does not belong to the user")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxDescriptionLength {
		return Description{}, ErrInvalidDescription
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }

type CommentText struct {
	value string
}

func NewCommentText(s string) (CommentText, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CommentText{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(s) > MaxCommentLength {
		return CommentText{}, ErrCommentTooLong
	}
	return CommentText{value: s}, nil
}

func (c CommentText) String() string { return c.value }

func ReconstructName(s string) Name { return Name{value: s} }

func ReconstructDescription(s string) Description { return Description{value: s} }
