package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader uploads data URIs into a fixed storage folder.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media: init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, dataURI string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}
	// the SDK reports API-level rejections in the body, not err
	if resp.Error.Message != "" {
		return "", fmt.Errorf("media: upload rejected: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
