package ai

import "strings"

// ExtractImage проверяет ответ по одной фиксированной форме: непустой список
// частей, первая часть несёт бинарные данные с MIME-типом image/*.
// Возвращает байты картинки и MIME-тип. Это не универсальный разбор схемы:
// другие формы ответа сознательно не пробуются.
func ExtractImage(resp *Response) ([]byte, string, bool) {
	if resp == nil || len(resp.Parts) == 0 {
		return nil, "", false
	}
	first := resp.Parts[0]
	if len(first.Data) == 0 || !strings.HasPrefix(first.MIMEType, "image/") {
		return nil, "", false
	}
	return first.Data, first.MIMEType, true
}
