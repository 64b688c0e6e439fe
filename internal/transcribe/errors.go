package transcribe

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported media format")
	ErrFileNotFound      = errors.New("media file not found")
	ErrAudioExtraction   = errors.New("audio extraction failed")
)
