package styler

import (
	"context"
)

// Client transforms an image according to a text instruction.
// Returns the transformed image bytes and their mime type.
type Client interface {
	EditImage(ctx context.Context, mimeType string, image []byte, instruction string) ([]byte, string, error)
}
