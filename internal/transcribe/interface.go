package transcribe

import "context"

// Transcriber converts an audio or video file on disk into transcript text.
type Transcriber interface {
	// TranscribeFile returns the transcript of the media file at path.
	// Video files have their audio track extracted first.
	TranscribeFile(ctx context.Context, path string) (string, error)
}
