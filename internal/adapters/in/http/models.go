package http

// Error is the uniform error payload for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest carries a whole checkout: the order header, its
// lines and the optional detail and staff attribution. Dates use the
// D-MON-YY form, for example "15-jun-22".
type PlaceOrderRequest struct {
	OrderType        string                   `json:"orderType"`
	PlacedAt         string                   `json:"placedAt"`
	Lines            []OrderLineRequest       `json:"lines"`
	CollectionDetail *CollectionDetailRequest `json:"collectionDetail,omitempty"`
	DeliveryDetail   *DeliveryDetailRequest   `json:"deliveryDetail,omitempty"`
	StaffID          *int64                   `json:"staffId,omitempty"`
}

// PlaceOrderResponse returns the identifiers of a freshly placed order.
type PlaceOrderResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Completed bool   `json:"completed"`
}

// OrderLineRequest adds one product to an order.
type OrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// LinkStaffRequest attributes an order to a member of staff.
type LinkStaffRequest struct {
	StaffID int64 `json:"staffId"`
}

// CollectionDetailRequest records who collects an order and when.
type CollectionDetailRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Date      string `json:"date"`
}

// DeliveryDetailRequest records the delivery address and date.
type DeliveryDetailRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	House     string `json:"house"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Date      string `json:"date"`
}

// OrderResponse is the full read model of a single order.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Reference string              `json:"reference"`
	OrderType string              `json:"orderType"`
	Completed bool                `json:"completed"`
	PlacedAt  string              `json:"placedAt"`
	Lines     []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is one line of an order read model.
type OrderLineResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ProductResponse is the product snapshot returned after a line is added.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// BiggestSellerResponse is one row of the biggest sellers report.
type BiggestSellerResponse struct {
	ProductID   int64  `json:"productId"`
	Description string `json:"description"`
	TotalSold   int    `json:"totalSold"`
}

// StaleCollectionResponse is one uncollected order past its collection date.
type StaleCollectionResponse struct {
	OrderID   int64  `json:"orderId"`
	CollectOn string `json:"collectOn"`
}

// StaffSalesResponse is one row of the staff sales report.
type StaffSalesResponse struct {
	StaffID    int64   `json:"staffId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	OrdersSold int     `json:"ordersSold"`
	TotalValue float64 `json:"totalValue"`
}
