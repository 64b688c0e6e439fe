package transcribe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tasktracker/pkg/log"
	"tasktracker/pkg/whisper"
)

var audioExtensions = map[string]struct{}{
	".wav": {}, ".mp3": {}, ".m4a": {}, ".ogg": {}, ".flac": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".mkv": {}, ".webm": {}, ".avi": {},
}

type implTranscriber struct {
	l          log.Logger
	whisper    whisper.IWhisper
	ffmpegPath string
}

var _ Transcriber = (*implTranscriber)(nil)

// New creates a file transcriber backed by a speech-to-text client.
// ffmpegPath defaults to "ffmpeg" on PATH when empty.
func New(l log.Logger, w whisper.IWhisper, ffmpegPath string) Transcriber {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &implTranscriber{
		l:          l,
		whisper:    w,
		ffmpegPath: ffmpegPath,
	}
}

// TranscribeFile sends audio files to the speech-to-text client directly.
// Video files get their audio track extracted to a temporary 16 kHz mono
// WAV first, which is what whisper models expect.
func (t *implTranscriber) TranscribeFile(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := audioExtensions[ext]; ok {
		return t.whisper.TranscribeFile(ctx, path)
	}
	if _, ok := videoExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	audioPath, cleanup, err := t.extractAudio(ctx, path)
	if err != nil {
		return "", err
	}
	defer cleanup()

	return t.whisper.TranscribeFile(ctx, audioPath)
}

// extractAudio shells out to ffmpeg to pull the audio track into a temp WAV.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "tasktracker-audio-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrAudioExtraction, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	cleanup := func() { os.Remove(tmpPath) }

	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		tmpPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		t.l.Errorf(ctx, "transcribe: ffmpeg failed for %s: %v: %s", videoPath, err, string(out))
		return "", nil, fmt.Errorf("%w: %v", ErrAudioExtraction, err)
	}

	t.l.Debugf(ctx, "transcribe: extracted audio from %s to %s", videoPath, tmpPath)
	return tmpPath, cleanup, nil
}
