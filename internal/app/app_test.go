package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvertkey/embedded"
	"dvertkey/internal/mapping"
	"dvertkey/internal/packager"
	"dvertkey/internal/script"
)

type fakePackager struct {
	requests []packager.Request
	err      error
}

func (f *fakePackager) Package(_ context.Context, req packager.Request) error {
	f.requests = append(f.requests, req)
	return f.err
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Generated(path string) { f.events = append(f.events, "generated "+path) }
func (f *fakeNotifier) Packaging() { f.events = append(f.events, "packaging") }
func (f *fakeNotifier) Packaged(path string) { f.events = append(f.events, "packaged "+path) }
func (f *fakeNotifier) Error(msg string) { f.events = append(f.events, "error") }

func testOptions(t *testing.T, csv string) Options {
	t.Helper()
	dir := t.TempDir()

	mappingPath := filepath.Join(dir, "mapping.csv")
	require.NoError(t, os.WriteFile(mappingPath, []byte(csv), 0644))

	return Options{
		MappingPath:   mappingPath,
		Columns:       mapping.DefaultColumns,
		LayoutID:      "0xF0020409",
		OutputPath:    filepath.Join(dir, "out", "ahk", "dvertkey_F0020409.ahk"),
		ExeOutputPath: filepath.Join(dir, "out", "exe", "dvertkey_F0020409.exe"),
	}
}

func TestRunWritesScript(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\na,a\n")
	pkg := &fakePackager{}
	n := &fakeNotifier{}

	require.NoError(t, New(pkg, n).Run(context.Background(), opts))

	got, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	table := mapping.NewTable()
	table.Set("q", "'")
	want, err := script.Render(table, opts.LayoutID)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))
	assert.Empty(t, pkg.requests)
	assert.Equal(t, []string{"generated " + opts.OutputPath}, n.events)
}

func TestRunIsIdempotent(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\nw,\",\"\n")
	a := New(nil, nil)

	require.NoError(t, a.Run(context.Background(), opts))
	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), opts))
	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunPackagesWithEmbeddedIcon(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	opts.GenerateExe = true
	opts.CompressExe = true
	pkg := &fakePackager{}
	n := &fakeNotifier{}

	require.NoError(t, New(pkg, n).Run(context.Background(), opts))

	iconPath := filepath.Join(filepath.Dir(opts.OutputPath), embedded.IconName)
	require.Len(t, pkg.requests, 1)
	assert.Equal(t, packager.Request{
		ScriptPath: opts.OutputPath,
		IconPath:   iconPath,
		Compress:   true,
		OutputPath: opts.ExeOutputPath,
	}, pkg.requests[0])
	assert.FileExists(t, iconPath)

	assert.Equal(t, []string{
		"generated " + opts.OutputPath,
		"packaging",
		"packaged " + opts.ExeOutputPath,
	}, n.events)
}

func TestRunPackagesWithCustomIcon(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	opts.GenerateExe = true
	opts.IconPath = "/icons/custom.ico"
	pkg := &fakePackager{}

	require.NoError(t, New(pkg, nil).Run(context.Background(), opts))

	require.Len(t, pkg.requests, 1)
	assert.Equal(t, "/icons/custom.ico", pkg.requests[0].IconPath)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(opts.OutputPath), embedded.IconName))
}

func TestRunPackagingFailureKeepsScript(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	opts.GenerateExe = true
	pkg := &fakePackager{err: fmt.Errorf("%w: компилятор вернул код 1", packager.ErrPackagingFailed)}
	n := &fakeNotifier{}

	err := New(pkg, n).Run(context.Background(), opts)
	require.ErrorIs(t, err, packager.ErrPackagingFailed)

	assert.FileExists(t, opts.OutputPath)
	assert.Equal(t, "error", n.events[len(n.events)-1])
}

func TestRunWithoutPackager(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	opts.GenerateExe = true

	err := New(nil, nil).Run(context.Background(), opts)
	assert.ErrorIs(t, err, packager.ErrPackagingFailed)
}

func TestRunMissingMapping(t *testing.T) {
	opts := testOptions(t, "")
	opts.MappingPath = filepath.Join(t.TempDir(), "missing.csv")
	n := &fakeNotifier{}

	err := New(nil, n).Run(context.Background(), opts)
	require.ErrorIs(t, err, mapping.ErrInputNotFound)

	assert.NoFileExists(t, opts.OutputPath)
	assert.Equal(t, []string{"error"}, n.events)
}

func TestRunMalformedMapping(t *testing.T) {
	opts := testOptions(t, "src,dst\na,q\ns,q\n")

	err := New(nil, nil).Run(context.Background(), opts)
	require.ErrorIs(t, err, mapping.ErrMalformedInput)
	assert.NoFileExists(t, opts.OutputPath)
}

func TestRunOutputWriteFailure(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	opts.OutputPath = filepath.Join(blocker, "script.ahk")

	err := New(nil, nil).Run(context.Background(), opts)
	assert.ErrorIs(t, err, script.ErrOutputWrite)
}

func TestRunRequiresLayoutID(t *testing.T) {
	opts := testOptions(t, "US,DV\nq,'\n")
	opts.LayoutID = ""

	assert.Error(t, New(nil, nil).Run(context.Background(), opts))
}
