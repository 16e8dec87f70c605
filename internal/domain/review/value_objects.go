package review

import (
	"errors"
	"strings"
)

const (
	MaxBodyLength      = 1000
	MaxImagesPerReview = 10
)

var (
	ErrInvalidStars = errors.New("stars must be an integer from 1 to 5")
	ErrEmptyBody    = errors.New("review text cannot be empty")
	ErrBodyTooLong  = errors.New("review text exceeds maximum length")
)

type Stars struct {
	value int
}

func NewStars(v int) (Stars, error) {
	if v < 1 || v > 5 {
		return Stars{}, ErrInvalidStars
	}
	return Stars{value: v}, nil
}

func (s Stars) Value() int { return s.value }

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Body{}, ErrEmptyBody
	}
	if len(t) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: t}, nil
}

func (b Body) String() string { return b.text }
