package stocks

type StockItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Brand       string `json:"brand" binding:"required"`
	MaxCapacity *int   `json:"max_capacity" binding:"required,min=0"`
	Quantity    *int   `json:"quantity" binding:"required,min=0"`
	Category    string `json:"category" binding:"required"`
}

type QuantityRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

type stockItemURI struct {
	ID int `uri:"id" binding:"required"`
}

type stockItemNameURI struct {
	Name string `uri:"name" binding:"required"`
}
