package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"m2t/internal/app/execx"
	"m2t/internal/app/model"
	"m2t/internal/app/testutil"
	"m2t/internal/config"
)

func newTestNormalizer(runner execx.Runner) *Normalizer {
	return NewNormalizer(&config.Config{TranscoderBinary: "ffmpeg"}, runner, zap.NewNop())
}

func writeMedia(t *testing.T, dir, name string) model.MediaFile {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("mediadata"), 0o644))
	return model.NewMediaFile(path)
}

func TestNormalize_WavPassesThroughUnchanged(t *testing.T) {
	runner := testutil.NewFakeRunner()
	n := newTestNormalizer(runner)
	in := writeMedia(t, t.TempDir(), "sample.wav")

	out, err := n.Normalize(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Empty(t, runner.Calls, "canonical input must not spawn a process")
}

func TestNormalize_RejectsUnlistedFormats(t *testing.T) {
	for _, name := range []string{"a.flac", "a.ogg", "a.txt", "noext"} {
		t.Run(name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			n := newTestNormalizer(runner)
			in := writeMedia(t, t.TempDir(), name)

			_, err := n.Normalize(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
			assert.Empty(t, runner.Calls, "rejection must happen before any spawn")
		})
	}
}

func TestNormalize_TranscodesToSiblingWav(t *testing.T) {
	for _, name := range []string{"clip.mp4", "song.mp3", "voice.m4a"} {
		t.Run(name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			runner.Handle("ffmpeg", func(cmd execx.Command) (execx.Result, error) {
				out := cmd.Args[len(cmd.Args)-1]
				require.NoError(t, os.WriteFile(out, []byte("RIFF"), 0o644))
				return execx.Result{}, nil
			})
			n := newTestNormalizer(runner)
			dir := t.TempDir()
			in := writeMedia(t, dir, name)

			out, err := n.Normalize(context.Background(), in)

			require.NoError(t, err)
			base := name[:len(name)-len(filepath.Ext(name))]
			assert.Equal(t, filepath.Join(dir, base+".wav"), out.Path)
			assert.Equal(t, "wav", out.Format)
			assert.FileExists(t, in.Path, "original must be left untouched")

			calls := runner.CallsTo("ffmpeg")
			require.Len(t, calls, 1)
			assert.Equal(t, []string{"-y", "-i", in.Path, "-vn", out.Path}, calls[0].Args)
		})
	}
}

func TestNormalize_TranscoderUnavailable(t *testing.T) {
	runner := testutil.NewFakeRunner() // nothing scripted: ffmpeg is missing
	n := newTestNormalizer(runner)
	in := writeMedia(t, t.TempDir(), "clip.mp4")

	_, err := n.Normalize(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTranscoderUnavailable)
}

func TestNormalize_FailureRemovesPartialOutput(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Handle("ffmpeg", func(cmd execx.Command) (execx.Result, error) {
		// Simulate a partially written output before the non-zero exit.
		out := cmd.Args[len(cmd.Args)-1]
		require.NoError(t, os.WriteFile(out, []byte("partial"), 0o644))
		return execx.Result{Stderr: "Invalid data found", ExitCode: 1}, testutil.ExitError(1)
	})
	n := newTestNormalizer(runner)
	dir := t.TempDir()
	in := writeMedia(t, dir, "clip.mp4")

	_, err := n.Normalize(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTranscodeFailed)
	assert.Contains(t, err.Error(), "Invalid data found")
	assert.NoFileExists(t, filepath.Join(dir, "clip.wav"))
	assert.FileExists(t, in.Path)
}

func TestNormalize_ZeroExitButMissingOutput(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Handle("ffmpeg", testutil.Succeed(""))
	n := newTestNormalizer(runner)
	in := writeMedia(t, t.TempDir(), "clip.mp4")

	_, err := n.Normalize(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTranscodeFailed)
}
