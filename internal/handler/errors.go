package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"yatube/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse - ответ на невалидную форму, с введёнными значениями
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
	Form   interface{}       `json:"form,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Ошибка кодирования ответа: %v", err)
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// form is echoed back on validation errors so the client can redisplay it.
func writeServiceError(w http.ResponseWriter, err error, form interface{}) {
	var valErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var authErr *service.AuthorizationError

	switch {
	case errors.As(err, &valErr):
		writeSuccess(w, ValidationResponse{
			Error:  "Неверные данные",
			Fields: map[string]string{valErr.Field: valErr.Message},
			Form:   form,
		}, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		WriteError(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &authErr):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidToken):
		WriteError(w, "Refresh Token истек или недействителен", http.StatusUnauthorized)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
