package backend

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"headless", Headless, false},
		{"AppKit", AppKit, false},
		{"macos", AppKit, false},
		{" win32 ", Win32, false},
		{"windows", Win32, false},
		{"gtk", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindText(t *testing.T) {
	b, err := Win32.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "win32", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("appkit")))
	assert.Equal(t, AppKit, k)
	assert.Error(t, k.UnmarshalText([]byte("motif")))
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestKindAvailable(t *testing.T) {
	assert.True(t, Headless.Available())
	assert.Equal(t, runtime.GOOS == "darwin", AppKit.Available())
	assert.Equal(t, runtime.GOOS == "windows", Win32.Available())
	assert.True(t, Default().Available())
}

func TestParentBox(t *testing.T) {
	cs := ParentBox(7)
	require.Len(t, cs, 4)
	seen := map[ConstraintAlignment]bool{}
	for _, c := range cs {
		assert.Equal(t, core.ViewID(7), c.Reference)
		assert.Equal(t, c.Alignment, c.ReferenceAlignment)
		seen[c.Alignment] = true
	}
	assert.Len(t, seen, 4)
}

func TestAnchorsOf(t *testing.T) {
	a := AnchorsOf(3)
	assert.Equal(t, Anchor{View: 3, Position: AnchorLeft}, a.Left)
	assert.Equal(t, Anchor{View: 3, Position: AnchorCenterY}, a.CenterY)
}

func TestOpen(t *testing.T) {
	defer Register(Headless, nil)

	require.False(t, Registered(Headless))
	_, err := Open(Headless, HostConfig{})
	assert.True(t, errors.Is(err, ErrBackendUnavailable))

	var got HostConfig
	Register(Headless, func(cfg HostConfig) (Host, error) {
		got = cfg
		return nil, nil
	})
	assert.True(t, Registered(Headless))

	_, err = Open(Headless, HostConfig{Title: "Demo"})
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Title)
}
