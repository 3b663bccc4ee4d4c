// Package layout определяет идентификатор активной раскладки клавиатуры.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported возвращается на платформах без запроса раскладки.
	ErrUnsupported = errors.New("определение раскладки не поддерживается на этой платформе")
	// ErrQueryFailed возвращается, если системный вызов недоступен.
	ErrQueryFailed = errors.New("не удалось определить активную раскладку")
)

// ID - идентификатор раскладки в виде "0x" и восьми hex-цифр.
// Значение не разбирается и подставляется в скрипт как есть.
type ID string

// FromHandle форматирует HKL как фиксированную hex-строку.
func FromHandle(hkl uint32) ID {
	return ID(fmt.Sprintf("0x%08X", hkl))
}

// String возвращает идентификатор как есть.
func (id ID) String() string {
	return string(id)
}

// Suffix возвращает идентификатор без префикса 0x (для имён файлов).
func (id ID) Suffix() string {
	return strings.ReplaceAll(string(id), "0x", "")
}

// Provider возвращает активную раскладку окружения.
type Provider interface {
	// Current возвращает идентификатор текущей раскладки.
	Current() (ID, error)
}

// Static - провайдер с заранее известным значением.
type Static ID

// Current возвращает фиксированный идентификатор.
func (s Static) Current() (ID, error) {
	return ID(s), nil
}

// New создаёт платформо-специфичный Provider.
func New() Provider {
	return newProvider()
}
