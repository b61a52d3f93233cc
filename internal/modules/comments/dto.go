package comments

// CreateCommentRequest mirrors the authoring rules: 50-300 characters of
// text and a 1-5 rating.
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required,min=50,max=300"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}
