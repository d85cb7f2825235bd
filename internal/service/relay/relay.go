package relay

import (
	"context"
	"errors"

	"GeminiImageBot/internal/ai"

	"go.uber.org/zap"
)

// Kind исход одного запроса генерации.
type Kind int

const (
	KindImage   Kind = iota // изображение извлечено
	KindNoImage             // ответ получен, но картинки в нём нет
	KindBlocked             // промпт отклонён фильтром безопасности
	KindStopped             // генерация прервана провайдером
	KindFailed              // любая другая ошибка
)

// Result итог запроса: ровно один на вызов Generate.
type Result struct {
	Kind       Kind
	ImageBytes []byte
	MIMEType   string
}

// Extractor стратегия извлечения картинки из ответа провайдера. Подменяется,
// если реальная схема ответа отличается от ожидаемой.
type Extractor func(*ai.Response) ([]byte, string, bool)

// Relay оркестратор сценария «запрос → извлечение → классификация».
type Relay struct {
	client  ai.Client
	extract Extractor
	logger  *zap.SugaredLogger
}

// New создаёт оркестратор. Пустой extract означает стандартную пробу ai.ExtractImage.
func New(client ai.Client, extract Extractor, logger *zap.SugaredLogger) *Relay {
	if extract == nil {
		extract = ai.ExtractImage
	}
	return &Relay{client: client, extract: extract, logger: logger}
}

// Generate выполняет сценарий один раз. Повторов нет: каждая ошибка
// превращается ровно в один терминальный Result.
func (r *Relay) Generate(ctx context.Context, prompt string) Result {
	resp, err := r.client.GenerateContent(ctx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrBlocked):
			r.logger.Warnw("Промпт отклонён фильтром безопасности", "prompt", prompt, "error", err)
			return Result{Kind: KindBlocked}
		case errors.Is(err, ai.ErrStopped):
			r.logger.Warnw("Генерация прервана провайдером", "prompt", prompt, "error", err)
			return Result{Kind: KindStopped}
		default:
			r.logger.Errorw("Ошибка генерации изображения", "prompt", prompt, "error", err)
			return Result{Kind: KindFailed}
		}
	}

	data, mime, ok := r.extract(resp)
	if !ok {
		// Логируем весь ответ: без него не понять фактическую форму данных провайдера
		r.logger.Warnw("Ответ получен, но изображение не найдено", "prompt", prompt, "response", resp)
		return Result{Kind: KindNoImage}
	}
	r.logger.Infow("Изображение сгенерировано", "prompt", prompt, "mime", mime, "bytes", len(data))
	return Result{Kind: KindImage, ImageBytes: data, MIMEType: mime}
}
