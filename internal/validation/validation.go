package validation

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"

	"adboardCPT/internal/apperrors"
)

// Коды причин в стиле pydantic, чтобы клиент мог различать ошибки машинно.
const (
	ReasonMissing        = "missing"
	ReasonExtraForbidden = "extra_forbidden"
	ReasonStringType     = "string_type"
	ReasonIntegerType    = "integer_type"
)

const (
	KindString  = "string"
	KindInteger = "integer"
)

// Field - описание одного поля схемы. Rule - тэг validator/v10,
// применяется только к присутствующим в запросе значениям.
type Field struct {
	Name     string
	Kind     string
	Required bool
	Rule     string
}

// Schema - описание допустимого тела запроса для одного ресурса.
// Режим create/update задаётся самой схемой: в update-схемах все поля
// необязательные.
type Schema struct {
	Resource string
	Fields   []Field
}

// FieldSet - принятые поля. Содержит только поля, явно присутствовавшие
// в запросе: отсутствующее поле никогда не появляется здесь с дефолтом.
type FieldSet map[string]any

func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

func (fs FieldSet) String(name string) string {
	v, _ := fs[name].(string)
	return v
}

func (fs FieldSet) Int64(name string) int64 {
	v, _ := fs[name].(int64)
	return v
}

var ruleValidator = validator.New()

// Validate проверяет тело запроса против схемы. Останавливается на первом
// неподходящем поле. Чистая функция: ни БД, ни контекст не трогает.
func Validate(schema Schema, payload map[string]any) (FieldSet, error) {
	fields := make(FieldSet, len(schema.Fields))

	for _, field := range schema.Fields {
		raw, present := payload[field.Name]
		if !present {
			if field.Required {
				return nil, apperrors.NewValidation(field.Name, ReasonMissing)
			}
			continue
		}

		// Явно переданное значение - это всегда попытка записи,
		// даже пустое или null. Проверяем его как обычно.
		value, reason := coerce(field.Kind, raw)
		if reason != "" {
			return nil, apperrors.NewValidation(field.Name, reason)
		}

		if field.Rule != "" {
			if err := ruleValidator.Var(value, field.Rule); err != nil {
				return nil, apperrors.NewValidation(field.Name, failedTag(err))
			}
		}

		fields[field.Name] = value
	}

	// Лишние поля запрещены в обоих режимах.
	if len(payload) > len(fields) {
		for _, name := range sortedKeys(payload) {
			if !schema.hasField(name) {
				return nil, apperrors.NewValidation(name, ReasonExtraForbidden)
			}
		}
	}

	return fields, nil
}

func (s Schema) hasField(name string) bool {
	for _, field := range s.Fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

// coerce приводит сырое JSON-значение к типу поля.
// Тело запроса декодируется с UseNumber, поэтому числа приходят как json.Number.
func coerce(kind string, raw any) (any, string) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, ReasonStringType
		}
		return s, ""
	case KindInteger:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, ReasonIntegerType
		}
		i, err := n.Int64()
		if err != nil {
			return nil, ReasonIntegerType
		}
		return i, ""
	}
	return nil, ReasonExtraForbidden
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return "invalid"
}

func sortedKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
