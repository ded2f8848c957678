package models

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNotEnoughWords   = errors.New("not enough words to start a quiz")
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrQuizCompleted    = errors.New("quiz is already completed")
	ErrQuizNotCompleted = errors.New("quiz is not completed yet")
	ErrSessionNotFound  = errors.New("quiz session not found")
)
