package domain

const DefaultDietaryOptions = "N/A"

type Activity struct {
	ID             uint   `json:"_id"`
	ImageName      string `json:"img_name,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	PriceRange     string `json:"price_range"`
	Popularity     string `json:"popularity"`
	DietaryOptions string `json:"dietary_options"`
}
