// Package config предоставляет настройки генератора.
//
// Порядок источников: флаги командной строки, переменные окружения
// DVERTKEY_*, файл dvertkey.{yaml,json,toml} рядом с бинарником, значения
// по умолчанию.
//
// В YAML и TOML значение layoutid нужно брать в кавычки, иначе 0xF0020409
// прочитается как число и вернётся в десятичном виде.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dvertkey/internal/packager"
)

// Ключи настроек. Совпадают с именами флагов (через подчёркивание).
const (
	KeyMapping      = "mapping"
	KeyLayoutID     = "layoutid"
	KeyOutput       = "output"
	KeyGenerateExe  = "generateexe"
	KeyExeOutput    = "exeoutput"
	KeyCompressExe  = "compressexe"
	KeyCompiler     = "compiler"
	KeyIcon         = "icon"
	KeySourceColumn = "source_column"
	KeyDestColumn   = "dest_column"
	KeyNotify       = "notify"
	KeyUILanguage   = "ui_language"
)

const (
	configName = "dvertkey"
	envPrefix  = "DVERTKEY"
)

// Config хранит настройки запуска.
type Config struct {
	v       *viper.Viper
	baseDir string
	file    string
}

// ExecutableDir возвращает директорию бинарника (с разрешёнными симлинками).
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("не удалось определить путь к бинарнику: %w", err)
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("не удалось разрешить симлинки: %w", err)
	}

	return filepath.Dir(execPath), nil
}

// New создаёт конфигурацию с путями по умолчанию относительно baseDir.
func New(baseDir string) *Config {
	v := viper.New()

	v.SetDefault(KeyCompiler, packager.DefaultCompilerPath)
	v.SetDefault(KeySourceColumn, "US")
	v.SetDefault(KeyDestColumn, "DV")
	v.SetDefault(KeyUILanguage, "ru")

	v.SetConfigName(configName)
	v.AddConfigPath(baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v: v, baseDir: baseDir}
}

// Load читает файл конфигурации. Без explicitPath отсутствие файла
// рядом с бинарником не считается ошибкой.
func (c *Config) Load(explicitPath string) error {
	if explicitPath != "" {
		c.v.SetConfigFile(explicitPath)
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("не удалось прочитать конфигурацию: %w", err)
	}

	c.file = c.v.ConfigFileUsed()
	return nil
}

// BindFlags связывает флаги с ключами: флаг "source-column" -> "source_column".
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		err = c.v.BindPFlag(key, f)
	})
	return err
}

// File возвращает путь к прочитанному файлу конфигурации.
func (c *Config) File() string {
	return c.file
}

// BaseDir возвращает директорию для путей по умолчанию.
func (c *Config) BaseDir() string {
	return c.baseDir
}

// MappingPath возвращает путь к таблице соответствий.
func (c *Config) MappingPath() string {
	if p := c.v.GetString(KeyMapping); p != "" {
		return p
	}
	return filepath.Join(c.baseDir, "mapping.csv")
}

// LayoutID возвращает явно заданную раскладку или пустую строку.
func (c *Config) LayoutID() string {
	return c.v.GetString(KeyLayoutID)
}

// OutputPath возвращает путь к скрипту. suffix - идентификатор без 0x.
func (c *Config) OutputPath(suffix string) string {
	if p := c.v.GetString(KeyOutput); p != "" {
		return p
	}
	return filepath.Join(c.baseDir, "out", "ahk", "dvertkey_"+suffix+".ahk")
}

// ExeOutputPath возвращает путь к исполняемому файлу.
func (c *Config) ExeOutputPath(suffix string) string {
	if p := c.v.GetString(KeyExeOutput); p != "" {
		return p
	}
	return filepath.Join(c.baseDir, "out", "exe", "dvertkey_"+suffix+".exe")
}

// GenerateExe возвращает true, если нужна сборка исполняемого файла.
func (c *Config) GenerateExe() bool {
	return c.v.GetBool(KeyGenerateExe)
}

// CompressExe возвращает true, если нужно сжатие UPX.
func (c *Config) CompressExe() bool {
	return c.v.GetBool(KeyCompressExe)
}

// CompilerPath возвращает путь к Ahk2Exe.
func (c *Config) CompilerPath() string {
	return c.v.GetString(KeyCompiler)
}

// IconPath возвращает путь к иконке или пустую строку (встроенная иконка).
func (c *Config) IconPath() string {
	return c.v.GetString(KeyIcon)
}

// Columns возвращает имена колонок исходной и целевой раскладки.
func (c *Config) Columns() (source, destination string) {
	return c.v.GetString(KeySourceColumn), c.v.GetString(KeyDestColumn)
}

// Notify возвращает true, если включены уведомления.
func (c *Config) Notify() bool {
	return c.v.GetBool(KeyNotify)
}

// UILanguage возвращает язык сообщений.
func (c *Config) UILanguage() string {
	return c.v.GetString(KeyUILanguage)
}
