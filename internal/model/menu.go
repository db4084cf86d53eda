package model

// MenuItem mirrors a Menu item.  ParcelPrice is nullable: a nil pointer is
// stored as a NULL attribute, not omitted.
type MenuItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CategoryName string   `json:"category_name"`
	Price        float64  `json:"price"`
	ParcelPrice  *float64 `json:"parcel_price"`
	ImageURL     string   `json:"image_url,omitempty"`
	IsAvailable  bool     `json:"is_available"`
	IsVeg        bool     `json:"is_veg"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// MenuItemUpdate carries a partial menu mutation.  ParcelPrice is the one
// nullable field, so a nil pointer alone cannot distinguish "leave as is"
// from "clear"; ClearParcelPrice marks the latter and wins over ParcelPrice.
type MenuItemUpdate struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	CategoryName     *string  `json:"category_name"`
	Price            *float64 `json:"price"`
	ParcelPrice      *float64 `json:"parcel_price"`
	ClearParcelPrice bool     `json:"clear_parcel_price,omitempty"`
	ImageURL         *string  `json:"image_url"`
	IsAvailable      *bool    `json:"is_available"`
	IsVeg            *bool    `json:"is_veg"`
}

// Category mirrors a Categories item.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
