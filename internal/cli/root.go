// Package cli описывает командную строку dvertkey.
package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"dvertkey/internal/app"
	"dvertkey/internal/config"
	"dvertkey/internal/dialog"
	"dvertkey/internal/i18n"
	"dvertkey/internal/layout"
	"dvertkey/internal/mapping"
	"dvertkey/internal/notify"
	"dvertkey/internal/packager"
)

// Deps - внешние зависимости команды, подменяемые в тестах.
type Deps struct {
	// BaseDir - директория для путей по умолчанию (обычно рядом с бинарником).
	BaseDir string
	// Layout определяет раскладку, если она не задана явно.
	Layout layout.Provider
	// NewPackager создаёт сборщик для компилятора по указанному пути.
	NewPackager func(compilerPath string) packager.Packager
	// NewNotifier создаёт уведомления.
	NewNotifier func(enabled bool) app.Notifier
	// PickMapping открывает диалог выбора таблицы.
	PickMapping func(current string) (string, error)
	// ShowError показывает ошибку в диалоге (только для --pick).
	ShowError func(message string)
}

// DefaultDeps возвращает зависимости для реального запуска.
func DefaultDeps() Deps {
	baseDir, err := config.ExecutableDir()
	if err != nil {
		log.Printf("Пути по умолчанию берутся от текущей директории: %v", err)
		baseDir = "."
	}

	return Deps{
		BaseDir: baseDir,
		Layout:  layout.New(),
		NewPackager: func(compilerPath string) packager.Packager {
			return packager.NewAhk2Exe(compilerPath)
		},
		NewNotifier: func(enabled bool) app.Notifier {
			return notify.New(enabled)
		},
		PickMapping: dialog.SelectMapping,
		ShowError:   dialog.ShowError,
	}
}

type flags struct {
	configPath string
	pick       bool
	debug      bool
}

// NewRootCommand создаёт корневую команду.
func NewRootCommand(deps Deps) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "dvertkey",
		Short: "Generates dvertkey AHK mapping scripts from keyboard mappings",
		Long: `dvertkey generates an AutoHotkey script that keeps Ctrl, Alt and Win
shortcuts on their QWERTY positions while an alternate layout (e.g. Dvorak)
is active, and optionally compiles it into a standalone executable with Ahk2Exe.

Examples:
  dvertkey
  dvertkey --layoutid 0xF0020409 --generateexe --compressexe
  dvertkey --mapping colemak.csv --dest-column CM`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New(deps.BaseDir)
			if err := cfg.BindFlags(cmd.Flags()); err != nil {
				return err
			}

			err := run(cmd, deps, cfg, f)
			if err != nil && f.pick && deps.ShowError != nil && !errors.Is(err, dialog.ErrCanceled) {
				deps.ShowError(err.Error())
			}
			return err
		},
	}

	fs := cmd.Flags()
	fs.String("mapping", "", "Path to the CSV file containing QWERTY->Dvorak mappings")
	fs.String("layoutid", "", "ID of the Dvorak layout in hex as returned by GetKeyboardLayout")
	fs.String("output", "", "Where to store the generated AHK file")
	fs.String("exeoutput", "", "Where to store the generated executable file")
	fs.Bool("generateexe", false, "Generate executable file")
	fs.Bool("compressexe", false, "Compress generated executable with UPX")
	fs.String("compiler", "", "Path to Ahk2Exe.exe")
	fs.String("icon", "", "Icon of the generated executable (embedded icon by default)")
	fs.String("source-column", "", "Mapping column with source (QWERTY) keys")
	fs.String("dest-column", "", "Mapping column with destination (layout) keys")
	fs.Bool("notify", false, "Show a desktop notification when done")
	fs.StringVar(&f.configPath, "config", "", "Config file (default dvertkey.{yaml,json,toml} next to the binary)")
	fs.BoolVar(&f.pick, "pick", false, "Choose the mapping file in a dialog")
	fs.BoolVar(&f.debug, "debug", false, "Log resolved options")

	return cmd
}

func run(cmd *cobra.Command, deps Deps, cfg *config.Config, f flags) error {
	if err := cfg.Load(f.configPath); err != nil {
		return err
	}
	if cfg.File() != "" {
		log.Printf("Конфигурация: %s", cfg.File())
	}

	if lang := cfg.UILanguage(); lang != "" && !i18n.SetLanguage(i18n.Language(lang)) {
		log.Printf("Неизвестный язык интерфейса %q", lang)
	}

	opts, err := resolve(cfg, deps.Layout)
	if err != nil {
		return err
	}

	if f.pick {
		if deps.PickMapping == nil {
			return errors.New("выбор файла недоступен")
		}
		path, err := deps.PickMapping(opts.MappingPath)
		if err != nil {
			return err
		}
		opts.MappingPath = path
	}

	if f.debug {
		log.Printf("Параметры запуска:\n%s", spew.Sdump(opts))
	}

	var p packager.Packager
	if opts.GenerateExe && deps.NewPackager != nil {
		p = deps.NewPackager(cfg.CompilerPath())
	}

	var n app.Notifier
	if deps.NewNotifier != nil {
		n = deps.NewNotifier(cfg.Notify())
	}

	return app.New(p, n).Run(cmd.Context(), opts)
}

// resolve вычисляет параметры запуска. Провайдер раскладки опрашивается,
// только если раскладка не задана флагом, окружением или конфигурацией.
func resolve(cfg *config.Config, provider layout.Provider) (app.Options, error) {
	id := layout.ID(cfg.LayoutID())
	if id == "" {
		if provider == nil {
			return app.Options{}, errors.New(i18n.T("error_layout_unknown"))
		}

		current, err := provider.Current()
		if err != nil {
			return app.Options{}, fmt.Errorf("%s: %w", i18n.T("error_layout_unknown"), err)
		}
		id = current
		log.Printf("Активная раскладка: %s", id)
	}

	src, dst := cfg.Columns()

	return app.Options{
		MappingPath:   cfg.MappingPath(),
		Columns:       mapping.Columns{Source: src, Destination: dst},
		LayoutID:      id,
		OutputPath:    cfg.OutputPath(id.Suffix()),
		GenerateExe:   cfg.GenerateExe(),
		ExeOutputPath: cfg.ExeOutputPath(id.Suffix()),
		CompressExe:   cfg.CompressExe(),
		IconPath:      cfg.IconPath(),
	}, nil
}
