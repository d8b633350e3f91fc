package models

import "errors"

var (
	// ErrValidation - некорректный ввод, состояние не менялось
	ErrValidation = errors.New("validation failed")
	// ErrNotFound - инцидент, запись или флаг не найдены
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition - переход статуса запрещен автоматом состояний
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrForbidden - действие требует привилегированного актора
	ErrForbidden = errors.New("forbidden")
	// ErrConflict - запись нарушает ограничение уникальности
	ErrConflict = errors.New("conflict")
)
