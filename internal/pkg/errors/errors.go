package errors

import (
	"errors"
	"net/http"
)

// Виды ошибок приложения. Сервисы оборачивают причину в один из них,
// обработчики выбирают HTTP-статус через errors.Is.
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnprocessable используется, когда тело запроса не прошло валидацию
	// или мутацию не удалось выполнить.
	ErrUnprocessable = errors.New("unprocessable")

	// ErrInternal используется для неожиданных ошибок хранилища.
	ErrInternal = errors.New("internal error")
)

// Тексты сообщений для конверта ошибки
var messages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "internal server error",
}

// Status возвращает HTTP-статус для ошибки. Неизвестные ошибки считаются внутренними.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст сообщения для HTTP-статуса
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
