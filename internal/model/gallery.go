package model

// GalleryCategory mirrors a GalleryCategories item.
type GalleryCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

// Image mirrors an Images item; CategoryID names the owning gallery
// category.
type Image struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	FilePath    string `json:"file_path"`
	CreatedAt   string `json:"created_at"`
}

// OnlineOrderLink mirrors an OnlineOrderLinks item.
type OnlineOrderLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Logo     string `json:"logo"`
	BranchID string `json:"branch_id"`
}

// OnlineOrderLinkUpdate carries a partial order-link mutation.
type OnlineOrderLinkUpdate struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Logo     *string `json:"logo"`
	BranchID *string `json:"branch_id"`
}

// Testimonial mirrors a Testimonials item.
type Testimonial struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
