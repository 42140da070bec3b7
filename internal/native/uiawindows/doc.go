// Package uiawindows provides the Windows backend using the IUIAutomation
// COM API. All functionality requires Windows; on other platforms the
// package compiles as a no-op stub and no backend is registered.
package uiawindows
