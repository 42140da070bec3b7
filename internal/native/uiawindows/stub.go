//go:build !windows

package uiawindows
