// Package answer normalizes submitted answers (text, code, or audio) into
// the canonical text the feedback pipeline evaluates.
package answer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/logger"
)

// Type is the declared kind of a submitted answer.
type Type string

const (
	TypeText  Type = "text"
	TypeCode  Type = "code"
	TypeAudio Type = "audio"
)

// ValidType reports whether t is one of the accepted answer types.
func ValidType(t Type) bool {
	return t == TypeText || t == TypeCode || t == TypeAudio
}

// Upload carries an uploaded audio blob from the request layer.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Transcriber converts an audio file on disk to text.
type Transcriber interface {
	TranscribeAudio(ctx context.Context, path string) (string, error)
}

// Normalizer validates answer inputs and produces canonical text,
// transcribing audio uploads through the provider.
type Normalizer struct {
	transcriber Transcriber
	tempDir     string
}

// NewNormalizer creates a Normalizer that stages audio uploads under tempDir.
func NewNormalizer(transcriber Transcriber, tempDir string) *Normalizer {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Normalizer{transcriber: transcriber, tempDir: tempDir}
}

// Normalize converts the submitted answer into canonical text.
// For text/code, the text field must be non-empty and any audio upload is
// discarded. For audio, the upload is written to a per-request temp file,
// transcribed, and the file is removed on every exit path.
func (n *Normalizer) Normalize(ctx context.Context, answerType Type, text string, audio *Upload) (string, error) {
	switch answerType {
	case TypeText:
		if strings.TrimSpace(text) == "" {
			return "", apperrors.NewValidationError("Text answer is required")
		}
		return text, nil
	case TypeCode:
		if strings.TrimSpace(text) == "" {
			return "", apperrors.NewValidationError("Code answer is required")
		}
		return text, nil
	case TypeAudio:
		return n.normalizeAudio(ctx, audio)
	default:
		return "", apperrors.NewValidationError("Invalid answer type")
	}
}

func (n *Normalizer) normalizeAudio(ctx context.Context, audio *Upload) (string, error) {
	log := logger.FromContext(ctx)

	if audio == nil || audio.Content == nil {
		return "", apperrors.NewValidationError("Audio answer is required")
	}
	if !strings.HasPrefix(audio.ContentType, "audio") {
		return "", apperrors.NewValidationError("File is not an audio")
	}

	path, err := n.saveTempFile(audio)
	if err != nil {
		log.Error().Err(err).Msg("failed to save audio upload")
		return "", apperrors.NewAudioIOError(err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to delete temp audio file")
		}
	}()

	transcript, err := n.transcriber.TranscribeAudio(ctx, path)
	if err != nil {
		log.Error().Err(err).Msg("audio transcription failed")
		return "", apperrors.NewGenerationError("answer transcription", err)
	}
	return transcript, nil
}

// saveTempFile writes the upload under a collision-resistant name so
// concurrent requests never share a path.
func (n *Normalizer) saveTempFile(audio *Upload) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(audio.Filename)
	path := filepath.Join(n.tempDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, audio.Content); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
