package request

type CreateActivityRequest struct {
	Name           string `json:"name" form:"name"`
	Description    string `json:"description" form:"description"`
	Category       string `json:"category" form:"category"`
	PriceRange     string `json:"price_range" form:"price_range"`
	Popularity     string `json:"popularity" form:"popularity"`
	DietaryOptions string `json:"dietary_options" form:"dietary_options"`
}

func (req *CreateActivityRequest) Validate() error {
	return firstError(
		field("name", req.Name, required("name"), minLength("name", 3)),
		field("description", req.Description, required("description"), minLength("description", 10)),
		field("category", req.Category, required("category")),
		field("price_range", req.PriceRange, required("price_range")),
		field("popularity", req.Popularity, required("popularity")),
	)
}
