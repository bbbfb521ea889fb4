package request

// ReviewRequest submits a product review. Rating bounds are enforced by
// the use case, not here, so the error maps to the same code everywhere.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
