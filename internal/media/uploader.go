package media

import "context"

// Uploader forwards an image to the media host and returns its durable
// URL. The payload is a base64 data URI produced by the client form.
type Uploader interface {
	Upload(ctx context.Context, dataURI string) (string, error)
}
