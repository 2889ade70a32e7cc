package request

// DeleteImageRequest accepts either the public url or the storage key.
type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}
