// Package packager собирает исполняемый файл из скрипта внешним компилятором.
package packager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultCompilerPath - стандартное расположение Ahk2Exe.
const DefaultCompilerPath = `C:\Program Files\AutoHotkey\Compiler\Ahk2Exe.exe`

// ErrPackagingFailed - компилятор не запустился или вернул ненулевой код.
var ErrPackagingFailed = errors.New("ошибка сборки исполняемого файла")

// Request описывает одну сборку.
type Request struct {
	ScriptPath string
	IconPath   string
	Compress   bool
	OutputPath string
}

// Packager превращает скрипт в исполняемый файл.
type Packager interface {
	Package(ctx context.Context, req Request) error
}

// Runner запускает подготовленную команду.
type Runner func(cmd *exec.Cmd) error

// RunCommand запускает команду и ждёт её завершения.
func RunCommand(cmd *exec.Cmd) error {
	return cmd.Run()
}

// Ahk2Exe вызывает компилятор AutoHotkey.
type Ahk2Exe struct {
	CompilerPath string
	Run          Runner
	Stdout       io.Writer
	Stderr       io.Writer
}

// NewAhk2Exe создаёт Ahk2Exe для компилятора по пути compilerPath.
func NewAhk2Exe(compilerPath string) *Ahk2Exe {
	if compilerPath == "" {
		compilerPath = DefaultCompilerPath
	}
	return &Ahk2Exe{
		CompilerPath: compilerPath,
		Run:          RunCommand,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
}

// Args возвращает аргументы командной строки компилятора.
func (a *Ahk2Exe) Args(req Request) []string {
	compress := "0"
	if req.Compress {
		compress = "2" // UPX
	}

	return []string{
		"/in", req.ScriptPath,
		"/icon", req.IconPath,
		"/compress", compress,
		"/out", req.OutputPath,
	}
}

// Package запускает компилятор из его директории.
func (a *Ahk2Exe) Package(ctx context.Context, req Request) error {
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0755); err != nil {
		return fmt.Errorf("%w: не удалось создать директорию: %v", ErrPackagingFailed, err)
	}

	cmd := exec.CommandContext(ctx, a.CompilerPath, a.Args(req)...)
	cmd.Dir = filepath.Dir(a.CompilerPath)
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr

	log.Printf("Сборка %s -> %s", req.ScriptPath, req.OutputPath)

	run := a.Run
	if run == nil {
		run = RunCommand
	}

	if err := run(cmd); err != nil {
		var exit interface{ ExitCode() int }
		if errors.As(err, &exit) {
			return fmt.Errorf("%w: компилятор вернул код %d", ErrPackagingFailed, exit.ExitCode())
		}
		return fmt.Errorf("%w: не удалось запустить %s: %v", ErrPackagingFailed, a.CompilerPath, err)
	}

	return nil
}
