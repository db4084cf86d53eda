package model

// Branch mirrors a Branches item.
type Branch struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Address             string  `json:"address"`
	City                string  `json:"city"`
	State               string  `json:"state,omitempty"`
	Country             string  `json:"country"`
	Zipcode             string  `json:"zipcode,omitempty"`
	PhoneNumber         string  `json:"phone_number,omitempty"`
	Email               string  `json:"email,omitempty"`
	OpeningHours        string  `json:"opening_hours,omitempty"`
	ManagerName         string  `json:"manager_name,omitempty"`
	BranchOpeningDate   string  `json:"branch_opening_date,omitempty"`
	BranchStatus        string  `json:"branch_status"`
	SeatingCapacity     int     `json:"seating_capacity"`
	ParkingAvailability bool    `json:"parking_availability"`
	WifiAvailability    bool    `json:"wifi_availability"`
	ImageURL            string  `json:"image_url,omitempty"`
}

// BranchUpdate carries a partial branch mutation.
type BranchUpdate struct {
	Name                *string  `json:"name"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Address             *string  `json:"address"`
	City                *string  `json:"city"`
	State               *string  `json:"state"`
	Country             *string  `json:"country"`
	Zipcode             *string  `json:"zipcode"`
	PhoneNumber         *string  `json:"phone_number"`
	Email               *string  `json:"email"`
	OpeningHours        *string  `json:"opening_hours"`
	ManagerName         *string  `json:"manager_name"`
	BranchOpeningDate   *string  `json:"branch_opening_date"`
	BranchStatus        *string  `json:"branch_status"`
	SeatingCapacity     *int     `json:"seating_capacity"`
	ParkingAvailability *bool    `json:"parking_availability"`
	WifiAvailability    *bool    `json:"wifi_availability"`
	ImageURL            *string  `json:"image_url"`
}
