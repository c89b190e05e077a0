// Package backend defines the boundary between the framework core and the
// native widget toolkits. A backend supplies a Host (one native window with
// its message loop) and a Toolkit (constructors for native controls).
//
// Backends register a HostFactory for their Kind, usually from an init
// function, and applications select one explicitly:
//
//	import _ "github.com/go-drift/finestra/pkg/backend/headless"
//
//	host, err := backend.Open(backend.Headless, backend.HostConfig{Title: "Demo"})
package backend

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind identifies a backend implementation.
type Kind int

const (
	// Headless is the in-memory backend. It runs everywhere and is used by
	// tests and scripted demos.
	Headless Kind = iota
	// AppKit is the macOS backend.
	AppKit
	// Win32 is the Windows backend.
	Win32
)

var kindNames = [...]string{
	Headless: "headless",
	AppKit:   "appkit",
	Win32:    "win32",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a backend name as written in configuration files.
// "macos" and "windows" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "headless":
		return Headless, nil
	case "appkit", "macos", "cocoa":
		return AppKit, nil
	case "win32", "windows":
		return Win32, nil
	}
	return 0, fmt.Errorf("unknown backend %q", s)
}

// Available reports whether k can run on the current operating system.
func (k Kind) Available() bool {
	switch k {
	case Headless:
		return true
	case AppKit:
		return runtime.GOOS == "darwin"
	case Win32:
		return runtime.GOOS == "windows"
	}
	return false
}

// Default returns the native backend kind for the current operating system,
// or Headless where there is none.
func Default() Kind {
	switch runtime.GOOS {
	case "darwin":
		return AppKit
	case "windows":
		return Win32
	}
	return Headless
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
