// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"

	"dvertkey/internal/i18n"
)

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
	send    func(title, message, icon string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Generated показывает уведомление о созданном скрипте.
func (n *Notifier) Generated(path string) {
	n.notify(i18n.T("notify_script_done"), path)
}

// Packaging показывает уведомление о начале сборки.
func (n *Notifier) Packaging() {
	n.notify(i18n.T("notify_packaging"), i18n.T("notify_packaging_hint"))
}

// Packaged показывает уведомление о собранном исполняемом файле.
func (n *Notifier) Packaged(path string) {
	n.notify(i18n.T("notify_exe_done"), path)
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	if r := []rune(msg); len(r) > 200 {
		msg = string(r[:200]) + "..."
	}
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = n.send(i18n.T("app_name")+": "+title, message, "")
}
