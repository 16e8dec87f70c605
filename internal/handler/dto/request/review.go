package request

type CreateReviewRequest struct {
	Stars int    `json:"stars" binding:"required,min=1,max=5"`
	Body  string `json:"review" binding:"required,max=1000"`
}

type UpdateReviewRequest struct {
	Stars int    `json:"stars" binding:"required,min=1,max=5"`
	Body  string `json:"review" binding:"required,max=1000"`
}

type AddReviewImageRequest struct {
	URL string `json:"url" binding:"required,url"`
}
