package ai

import "errors"

// Классифицированные сигналы провайдера. Адаптеры оборачивают специфичные
// для SDK ошибки так, чтобы errors.Is находил эти метки.
var (
	// ErrBlocked промпт отклонён фильтром безопасности провайдера.
	ErrBlocked = errors.New("prompt blocked by safety filter")
	// ErrStopped генерация прервана провайдером до завершения.
	ErrStopped = errors.New("generation stopped by provider")
)
