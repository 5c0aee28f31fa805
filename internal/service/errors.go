package service

import "errors"

// Доменные ошибки ядра. Репозитории маппят ошибки хранилища на эти
// сентинелы, хэндлеры проверяют их через errors.Is.
var (
	// ErrValidation - некорректные входные данные (неизвестный тип, координаты вне диапазона)
	ErrValidation = errors.New("validation error")

	// ErrNotFound - запрошенная сущность отсутствует
	ErrNotFound = errors.New("not found")

	// ErrSelfVote - автор инцидента пытается подтвердить собственный отчет
	ErrSelfVote = errors.New("self vote")

	// ErrDuplicateVote - пользователь уже подтверждал этот инцидент
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrCycleRunning - цикл кластеризации уже выполняется; тик пропускается.
	// Информационная ситуация, а не сбой.
	ErrCycleRunning = errors.New("clustering cycle already running")
)
