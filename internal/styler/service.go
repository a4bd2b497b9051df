package styler

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid image format, expected a base64 data url")

// matches data:<mime>;base64,<payload>
var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

type Storage interface {
	UploadBytes(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type Service struct {
	client  Client
	storage Storage
}

func NewService(client Client, storage Storage) *Service {
	return &Service{client: client, storage: storage}
}

// --------------------------------------------------
// Edit an image and publish the result
// --------------------------------------------------

// Edit decodes a data-url image, hands it to the image model with the
// instruction, stores the transformed result and returns its URL.
func (s *Service) Edit(ctx context.Context, dataURL, instruction string) (string, error) {
	mimeType, image, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	edited, editedMime, err := s.client.EditImage(ctx, mimeType, image, instruction)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("styled/%s%s", uuid.New().String(), extensionFor(editedMime))
	return s.storage.UploadBytes(ctx, key, editedMime, edited)
}

func decodeDataURL(dataURL string) (mimeType string, data []byte, err error) {
	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if matches == nil {
		return "", nil, ErrInvalidImage
	}

	decoded, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return "", nil, ErrInvalidImage
	}
	return matches[1], decoded, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
