// dvertkey - генератор AutoHotkey-скриптов для альтернативных раскладок.
//
// Скрипт сохраняет сочетания Ctrl/Alt/Win на местах QWERTY, пока активна
// раскладка вроде Dvorak. По флагу --generateexe скрипт собирается в exe
// через Ahk2Exe.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"dvertkey/internal/cli"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := cli.NewRootCommand(cli.DefaultDeps())
	root.Version = Version

	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("Ошибка: %v", err)
		os.Exit(1)
	}
}
