package inventory

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	MinStock    int     `json:"min_stock" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}

type UpdateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	MinStock    int     `json:"min_stock" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}
