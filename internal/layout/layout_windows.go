//go:build windows

package layout

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
)

type windowsProvider struct{}

func newProvider() Provider {
	return windowsProvider{}
}

// Current вызывает GetKeyboardLayout(0) для текущего потока.
func (windowsProvider) Current() (ID, error) {
	if err := procGetKeyboardLayout.Find(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	hkl, _, _ := procGetKeyboardLayout.Call(0)

	// HKL - указатель, но значимы только младшие 32 бита
	return FromHandle(uint32(hkl)), nil
}
