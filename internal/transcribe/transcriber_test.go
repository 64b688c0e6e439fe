package transcribe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tasktracker/internal/transcribe"
	pkgLog "tasktracker/pkg/log"
)

type fakeWhisper struct {
	text     string
	err      error
	lastPath string
	calls    int
}

func (f *fakeWhisper) TranscribeFile(ctx context.Context, path string) (string, error) {
	f.calls++
	f.lastPath = path
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not real media"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribeFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Audio File Sent Directly", func(t *testing.T) {
		w := &fakeWhisper{text: "buy milk and call bob"}
		tr := transcribe.New(pkgLog.NewNop(), w, "")

		path := writeTempFile(t, "memo.wav")
		got, err := tr.TranscribeFile(ctx, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "buy milk and call bob" {
			t.Errorf("got %q", got)
		}
		if w.lastPath != path {
			t.Errorf("expected original path, got %q", w.lastPath)
		}
	})

	t.Run("Extension Case Insensitive", func(t *testing.T) {
		w := &fakeWhisper{text: "ok"}
		tr := transcribe.New(pkgLog.NewNop(), w, "")

		if _, err := tr.TranscribeFile(ctx, writeTempFile(t, "memo.MP3")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		w := &fakeWhisper{}
		tr := transcribe.New(pkgLog.NewNop(), w, "")

		_, err := tr.TranscribeFile(ctx, writeTempFile(t, "notes.txt"))
		if !errors.Is(err, transcribe.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
		if w.calls != 0 {
			t.Errorf("whisper must not be called, got %d calls", w.calls)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		tr := transcribe.New(pkgLog.NewNop(), &fakeWhisper{}, "")

		_, err := tr.TranscribeFile(ctx, filepath.Join(t.TempDir(), "gone.wav"))
		if !errors.Is(err, transcribe.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("Whisper Error Propagates", func(t *testing.T) {
		wErr := errors.New("server unreachable")
		tr := transcribe.New(pkgLog.NewNop(), &fakeWhisper{err: wErr}, "")

		if _, err := tr.TranscribeFile(ctx, writeTempFile(t, "memo.wav")); !errors.Is(err, wErr) {
			t.Errorf("expected wrapped whisper error, got %v", err)
		}
	})

	t.Run("Video Extraction Failure", func(t *testing.T) {
		// Point at a missing ffmpeg binary so extraction fails fast.
		tr := transcribe.New(pkgLog.NewNop(), &fakeWhisper{}, filepath.Join(t.TempDir(), "no-ffmpeg"))

		_, err := tr.TranscribeFile(ctx, writeTempFile(t, "clip.mp4"))
		if !errors.Is(err, transcribe.ErrAudioExtraction) {
			t.Errorf("expected ErrAudioExtraction, got %v", err)
		}
	})
}
