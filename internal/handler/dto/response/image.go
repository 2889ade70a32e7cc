package response

import "marketplace-api/internal/usecase/shared"

type ImageResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	ETag string `json:"etag"`
	Size int64  `json:"size"`
}

func FromStoredObject(o *shared.StoredObject) *ImageResponse {
	return &ImageResponse{
		Key:  o.Key,
		URL:  o.URL,
		ETag: o.ETag,
		Size: o.Size,
	}
}

type ImagesResponse struct {
	Images []*ImageResponse `json:"images"`
}
