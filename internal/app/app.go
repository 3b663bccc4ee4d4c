// Package app содержит основную логику приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"dvertkey/embedded"
	"dvertkey/internal/layout"
	"dvertkey/internal/mapping"
	"dvertkey/internal/notify"
	"dvertkey/internal/packager"
	"dvertkey/internal/script"
)

// Options - полностью разрешённые параметры одного запуска.
type Options struct {
	MappingPath   string
	Columns       mapping.Columns
	LayoutID      layout.ID
	OutputPath    string
	GenerateExe   bool
	ExeOutputPath string
	CompressExe   bool
	IconPath      string // пусто - встроенная иконка
}

// Notifier сообщает пользователю о ходе работы.
type Notifier interface {
	Generated(path string)
	Packaging()
	Packaged(path string)
	Error(msg string)
}

// App представляет генератор.
type App struct {
	packager packager.Packager
	notifier Notifier
}

// New создаёт приложение. Без notifier уведомления не отправляются.
func New(p packager.Packager, n Notifier) *App {
	if n == nil {
		n = notify.New(false)
	}
	return &App{packager: p, notifier: n}
}

// Run загружает таблицу, пишет скрипт и при необходимости собирает exe.
// При ошибке сборки скрипт остаётся на диске.
func (a *App) Run(ctx context.Context, opts Options) error {
	err := a.run(ctx, opts)
	if err != nil {
		a.notifier.Error(err.Error())
	}
	return err
}

func (a *App) run(ctx context.Context, opts Options) error {
	if opts.LayoutID == "" {
		return errors.New("не задан идентификатор раскладки")
	}

	table, err := mapping.LoadFile(opts.MappingPath, opts.Columns)
	if err != nil {
		return err
	}
	log.Printf("Загружено соответствий: %d (%s)", table.Len(), opts.MappingPath)

	if err := script.WriteFile(opts.OutputPath, table, opts.LayoutID); err != nil {
		return fmt.Errorf("%s: %w", opts.OutputPath, err)
	}
	log.Printf("Скрипт для раскладки %s записан: %s (правил: %d)",
		opts.LayoutID, opts.OutputPath, len(script.Rules(table)))
	a.notifier.Generated(opts.OutputPath)

	if !opts.GenerateExe {
		return nil
	}

	if a.packager == nil {
		return fmt.Errorf("%w: компилятор не настроен", packager.ErrPackagingFailed)
	}

	icon := opts.IconPath
	if icon == "" {
		// Иконка кладётся рядом со скриптом
		icon, err = embedded.WriteIcon(filepath.Dir(opts.OutputPath))
		if err != nil {
			return fmt.Errorf("%w: %v", script.ErrOutputWrite, err)
		}
	}

	a.notifier.Packaging()
	err = a.packager.Package(ctx, packager.Request{
		ScriptPath: opts.OutputPath,
		IconPath:   icon,
		Compress:   opts.CompressExe,
		OutputPath: opts.ExeOutputPath,
	})
	if err != nil {
		return err
	}

	log.Printf("Исполняемый файл собран: %s", opts.ExeOutputPath)
	a.notifier.Packaged(opts.ExeOutputPath)
	return nil
}
