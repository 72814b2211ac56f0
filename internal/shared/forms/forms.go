package forms

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Localized form messages (the UI is in Russian)
const (
	MsgRequired      = "Обязательное поле."
	MsgInvalidChoice = "Выберите корректный вариант. Вашего варианта нет среди допустимых значений."
	MsgInvalidImage  = "Загрузите правильное изображение. Файл, который вы загрузили, поврежден или не является изображением."
	MsgImageTooLarge = "Размер файла не должен превышать 5 МБ."
	MsgFileAndClear  = "Пожалуйста, загрузите файл или поставьте флажок \"Очистить\", но не обе операции одновременно."
)

// Required rule with the localized message
var Required = validation.Required.Error(MsgRequired)

// MaxLength rule: "Убедитесь, что это значение содержит не более N символов."
func MaxLength(n int) validation.Rule {
	return validation.RuneLength(0, n).Error(fmt.Sprintf("Убедитесь, что это значение содержит не более %d символов.", n))
}

// FieldError builds a single-field validation error
func FieldError(field, message string) validation.Errors {
	return validation.Errors{field: errors.New(message)}
}

// FieldErrors chuyển validation.Errors thành map field → message cho template.
// ok=false nếu err không phải lỗi validation.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string]string, len(verrs))
	for field, fe := range verrs {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out, true
}

// IsValidation reports whether err carries field errors
func IsValidation(err error) bool {
	_, ok := FieldErrors(err)
	return ok
}
