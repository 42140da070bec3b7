//go:build windows

package uiawindows

import "github.com/rheard/netauto/internal/native"

func init() {
	native.NewBackendFunc = func() (native.Backend, error) {
		return newBackend()
	}
}
