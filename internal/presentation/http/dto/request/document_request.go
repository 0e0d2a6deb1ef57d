package request

// DocumentRequest represents the multipart form of a document generation
// request. Field names match the booking form; prices and quantities arrive
// as strings and are parsed by the service so a malformed value becomes a
// field error rather than a binding failure.
type DocumentRequest struct {
	CustomerName    string `form:"customer_name"`
	CustomerAddress string `form:"customer_address"`
	CustomerContact string `form:"customer_contact"`

	TripType      string `form:"trip_type"`
	Pickup        string `form:"pickup"`
	Dropoff       string `form:"dropoff"`
	TripDate      string `form:"trip_date"`
	TripTime      string `form:"trip_time"`
	ReturnDate    string `form:"return_date"`
	ReturnTime    string `form:"return_time"`
	MultipleTrips string `form:"multiple_trips"`

	ServiceDescription string `form:"service_description"`
	Route              string `form:"route"`
	ScopeOfWork        string `form:"scope_of_work"`
	Quantity           string `form:"quantity"`
	UnitPrice          string `form:"unit_price"`
	Notes              string `form:"notes"`
	PaymentMethod      string `form:"payment_method"`
}
