package posts

// Record is a single post. Records are never mutated after decoding; a new
// fetch replaces the whole set.
type Record struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
