package resources

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestColorResolve(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		want   color.RGBA
		wantOK bool
	}{
		{"default", Color{}, color.RGBA{}, false},
		{"transparent", Transparent(), color.RGBA{}, true},
		{"rgb", RGB(1, 2, 3), color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}, true},
		{"rgba", RGBA(255, 0, 0, 127), color.RGBA{R: 255, A: 127}, true},
		{"system red", System(SystemRed), color.RGBA{R: 0xFF, A: 0xFF}, true},
		{"system label", System(SystemLabel), color.RGBA{A: 0xFF}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.color.Resolve()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSystemColorString(t *testing.T) {
	assert.Equal(t, "teal", SystemTeal.String())
	assert.Equal(t, "unknown", SystemColor(99).String())
}

func TestMenuBarMergesWithoutDuplicates(t *testing.T) {
	bar := NewMenuBar().With(
		NewMenu("File").With(Titled("Open"), Titled("Save")),
	)
	bar.AddMenu(NewMenu("File").With(Titled("Save"), Separator(), Titled("Quit")))

	require.Len(t, bar.Menus, 1)
	assert.Equal(t, []MenuItem{Titled("Open"), Titled("Save"), Separator(), Titled("Quit")}, bar.Menus[0].Items)
}

func TestMenuBarMenuGetOrCreate(t *testing.T) {
	bar := NewMenuBar()
	bar.Menu("File").AddItem(Titled("Open"))
	bar.Menu("File").AddItem(Titled("Save"))

	require.Len(t, bar.Menus, 1)
	assert.Len(t, bar.Menus[0].Items, 2)
}

func TestEnsureMenuAtMoves(t *testing.T) {
	bar := NewMenuBar()
	bar.Menu("Help")
	bar.Menu("View")
	bar.Menu("File")

	bar.EnsureMenuAt("File", 0)
	assert.Equal(t, []string{"File", "Help", "View"}, menuNames(bar))

	bar.EnsureMenuAt("Edit", 10)
	assert.Equal(t, []string{"File", "Help", "View", "Edit"}, menuNames(bar))
}

func TestFillStandardMenus(t *testing.T) {
	bar := NewMenuBar()
	bar.Menu("Help").AddItem(Titled("About"))
	bar.Menu("Selection").AddItem(Titled("Expand"))
	bar.Menu("File").AddItem(Titled("Open"))

	bar.FillStandardMenus()

	assert.Equal(t, []string{"", "File", "Edit", "Selection", "Help"}, menuNames(bar))
	assert.Equal(t, []MenuItem{Titled("Open")}, bar.Menus[1].Items, "non-empty File menu is left alone")
	assert.Len(t, bar.Menus[2].Items, 8)
}

func TestMenuItemTitle(t *testing.T) {
	title, ok := Titled("Quit").Title()
	assert.True(t, ok)
	assert.Equal(t, "Quit", title)

	_, ok = Separator().Title()
	assert.False(t, ok)
}

func TestCursorResolve(t *testing.T) {
	c := NewUnstableCursor(CursorBusy, CursorArrow)

	sys, _, ok := c.Resolve(func(u UnstableCursor) bool { return u == CursorBusy })
	assert.True(t, ok)
	assert.Equal(t, CursorArrow, sys)

	sys, _, ok = c.Resolve(func(UnstableCursor) bool { return false })
	assert.False(t, ok)
	assert.Equal(t, CursorArrow, sys)

	sys, _, ok = NewSystemCursor(CursorIBeam).Resolve(nil)
	assert.False(t, ok)
	assert.Equal(t, CursorIBeam, sys)
}

func TestTimerFire(t *testing.T) {
	fired := 0
	DelayedAction(0, func() { fired++ }).Fire()
	Timer{}.Fire()
	assert.Equal(t, 1, fired)
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, th)

	th, ok = ParseTheme("sepia")
	assert.False(t, ok)
	assert.Equal(t, ThemeAutomatic, th)
}

func TestImageDecode(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	pngPath := filepath.Join(dir, "icon.png")
	writeImage(t, pngPath, func(f *os.File) error { return png.Encode(f, img) })
	bmpPath := filepath.Join(dir, "icon.bmp")
	writeImage(t, bmpPath, func(f *os.File) error { return bmp.Encode(f, img) })

	info, err := ImageFromFile(pngPath).Decode()
	require.NoError(t, err)
	assert.Equal(t, ImageInfo{Format: "png", Width: 4, Height: 3}, info)

	info, err = ImageFromFile(bmpPath).Decode()
	require.NoError(t, err)
	assert.Equal(t, "bmp", info.Format)

	_, err = Image{}.Decode()
	assert.Error(t, err)
	_, err = ImageFromFile(filepath.Join(dir, "missing.png")).Decode()
	assert.Error(t, err)
}

func writeImage(t *testing.T, path string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
}

func menuNames(bar *MenuBar) []string {
	names := make([]string, len(bar.Menus))
	for i, m := range bar.Menus {
		names[i] = m.Name
	}
	return names
}

func TestMenuBarContains(t *testing.T) {
	bar := NewMenuBar().With(NewMenu("File").With(Titled("Open"), Separator()))

	assert.True(t, bar.Contains(Titled("Open")))
	assert.False(t, bar.Contains(Titled("Save")))
	assert.False(t, bar.Contains(Separator()))
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{}, "default"},
		{Transparent(), "transparent"},
		{RGB(0x12, 0xab, 0x00), "#12ab00ff"},
		{RGBA(1, 2, 3, 4), "#01020304"},
		{System(SystemRed), SystemRed.String()},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
