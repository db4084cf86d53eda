package model

// FranchiseRequest mirrors a FranchiseRequests item.
type FranchiseRequest struct {
	ID                       string  `json:"id"`
	UserName                 string  `json:"user_name"`
	UserEmail                string  `json:"user_email"`
	UserPhone                string  `json:"user_phone"`
	RequestedCity            string  `json:"requested_city"`
	RequestedState           string  `json:"requested_state,omitempty"`
	RequestedCountry         string  `json:"requested_country"`
	InvestmentBudget         float64 `json:"investment_budget"`
	ExperienceInFoodBusiness string  `json:"experience_in_food_business,omitempty"`
	AdditionalDetails        string  `json:"additional_details,omitempty"`
	RequestStatus            string  `json:"request_status"`
	CreatedAt                string  `json:"created_at"`
	UpdatedAt                string  `json:"updated_at"`
}
