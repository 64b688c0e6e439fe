package usecase

import (
	"context"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/task"
)

// Transcribe converts a media file to text and feeds the transcript
// through extraction.
func (uc *implUseCase) Transcribe(ctx context.Context, input task.TranscribeInput) (task.TranscribeOutput, error) {
	if strings.TrimSpace(input.FilePath) == "" {
		return task.TranscribeOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Transcribe: file=%s", input.FilePath)

	transcript, err := uc.transcriber.TranscribeFile(ctx, input.FilePath)
	if err != nil {
		return task.TranscribeOutput{}, err
	}
	if strings.TrimSpace(transcript) == "" {
		return task.TranscribeOutput{}, task.ErrEmptyTranscript
	}

	created, engine, err := uc.ingestText(ctx, transcript, model.SourceTranscript)
	if err != nil {
		return task.TranscribeOutput{}, err
	}

	return task.TranscribeOutput{
		Transcript: transcript,
		Tasks:      created,
		Count:      len(created),
		Engine:     engine,
	}, nil
}
