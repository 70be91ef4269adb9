package shopee

// ListResponse defines the envelope of the category list API response.
type ListResponse struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Data    *ListData `json:"data"`
}

type ListData struct {
	Total      int              `json:"total"`
	GlobalCats []GlobalCategory `json:"global_cats"`
}

// GlobalCategory is one taxonomy entry as returned by the seller API.
type GlobalCategory struct {
	CategoryID   int64    `json:"category_id"`
	CategoryName string   `json:"category_name"`
	ParentID     int64    `json:"parent_id"`
	HasChildren  bool     `json:"has_children"`
	Images       []string `json:"images"`
}

// Image returns the first image reference of the category, if any.
func (c GlobalCategory) Image() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}
