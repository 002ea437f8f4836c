package domain

var (
	MessageSuccessGetNGOs = "ngos retrieved successfully"
	MessageFailedGetNGOs  = "failed to retrieve ngos"
)

type NGOResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	RegistrationNumber string   `json:"registration_number"`
	Email              string   `json:"email"`
	PhoneNumber        string   `json:"phone_number"`
	Street             string   `json:"street"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	PostalCode         string   `json:"postal_code"`
	AcceptedCategories []string `json:"accepted_categories"`
	Rating             float64  `json:"rating"`
	RatingCount        int      `json:"rating_count"`
}

// AcceptsCategory reports whether the NGO takes donations of the given
// item category.
func (n *NGOResponse) AcceptsCategory(category string) bool {
	for _, c := range n.AcceptedCategories {
		if c == category {
			return true
		}
	}
	return false
}
