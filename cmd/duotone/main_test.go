package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/go-duotone/images"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
	require.NoError(t, images.Save(path, img, 0))
}

// resetFlags restores every flag of cmd and its subcommands to its default, so each
// execute starts from a clean command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	encoded, err := images.Load(path)
	require.NoError(t, err)
	img, err := images.Decode(encoded)
	require.NoError(t, err)
	return img
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	preview := filepath.Join(dir, "preview.png")
	writeTestImage(t, in, 800, 400)

	_, err := execute(t, "apply", "-i", in, "-o", out, "--preview", preview,
		"--dark", "#0a141e", "--light", "#c8d2dc")
	require.NoError(t, err)

	full := decodeFile(t, out)
	assert.Equal(t, image.Rect(0, 0, 800, 400), full.Bounds())
	assert.Equal(t, color.NRGBA{R: 200, G: 210, B: 220, A: 255}, color.NRGBAModel.Convert(full.At(10, 10)))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, color.NRGBAModel.Convert(full.At(790, 10)))

	small := decodeFile(t, preview)
	assert.Equal(t, image.Rect(0, 0, 500, 250), small.Bounds())
}

func TestApplyCommandBadColor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestImage(t, in, 4, 4)

	_, err := execute(t, "apply", "-i", in, "-o", filepath.Join(dir, "o.png"),
		"--dark", "not-a-color")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeTestImage(t, filepath.Join(src, "a.png"), 20, 10)
	writeTestImage(t, filepath.Join(src, "b.png"), 10, 20)
	require.NoError(t, os.WriteFile(filepath.Join(src, "skip.txt"), []byte("x"), 0o644))

	_, err := execute(t, "batch", "-d", src, "-o", dst, "--preset", "grayscale",
		"--format", "bmp", "--max-dimension", "10")
	require.NoError(t, err)

	a := decodeFile(t, filepath.Join(dst, "a.bmp"))
	assert.Equal(t, image.Rect(0, 0, 10, 5), a.Bounds())
	b := decodeFile(t, filepath.Join(dst, "b.bmp"))
	assert.Equal(t, image.Rect(0, 0, 5, 10), b.Bounds())

	_, err = execute(t, "batch", "-d", src, "-o", dst, "--format", "heic")
	assert.Error(t, err)
}

func TestPresetsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: zz-mine\n    dark: black\n    light: \"#ff0000\"\n"), 0o644))

	out, err := execute(t, "presets", "--presets-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "royal-gold")
	assert.Contains(t, out, "zz-mine")
	assert.Contains(t, out, "#ff0000")

	out, err = execute(t, "presets", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "presets:")
	assert.NotContains(t, out, "zz-mine")
}

// TestFlagsDoNotLeakBetweenRuns runs apply twice on the shared command tree. The second
// run omits --preview and --dark, so it must neither write a preview nor reuse the
// earlier dark endpoint.
func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestImage(t, in, 8, 4)

	preview := filepath.Join(dir, "preview.png")
	_, err := execute(t, "apply", "-i", in, "-o", filepath.Join(dir, "first.png"),
		"--preview", preview, "--dark", "#0a141e", "--light", "#c8d2dc")
	require.NoError(t, err)
	require.NoError(t, os.Remove(preview))

	second := filepath.Join(dir, "second.png")
	_, err = execute(t, "apply", "-i", in, "-o", second, "--light", "#c8d2dc")
	require.NoError(t, err)

	assert.NoFileExists(t, preview, "--preview leaked from the previous run")
	img := decodeFile(t, second)
	assert.NotEqual(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, color.NRGBAModel.Convert(img.At(7, 0)),
		"--dark leaked from the previous run")
}
