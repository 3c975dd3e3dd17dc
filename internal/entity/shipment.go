package entity

// ShipmentSnapshot is the normalized view of one shipment.
type ShipmentSnapshot struct {
	Sender          Party             `json:"sender"`
	Receiver        Party             `json:"receiver"`
	PackageDetails  PackageDetails    `json:"packageDetails"`
	TrackingHistory []TrackingEvent   `json:"trackingHistory"`
	PackageTracking []PackageTracking `json:"packageTracking"`
}

// Party is a sender or a receiver. Name holds the carrier's raw
// shipper/consignee reference value; its format is not normalized.
// An absent list gives an empty Name, never the text "null".
type Party struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type Address struct {
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
	City        string `json:"city"`
	PostCode    string `json:"postCode"`
}

type PackageDetails struct {
	PieceCount int         `json:"pieceCount"`
	Weight     float64     `json:"weight"`
	WeightUnit string      `json:"weightUnit"`
	Dimensions []Dimension `json:"dimensions"`
}

type Dimension struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// TrackingEvent is one history entry. Location and Comment are nil when
// the carrier did not send them.
type TrackingEvent struct {
	Code     string  `json:"code"`
	Date     string  `json:"date"`
	Location *string `json:"location"`
	Comment  *string `json:"comment"`
}

type PackageTracking struct {
	PackageID string          `json:"packageId"`
	Events    []TrackingEvent `json:"events"`
}

// ShipmentSummary is the search hit returned when resolving a reference.
type ShipmentSummary struct {
	ID                 string `json:"id"`
	STT                string `json:"stt"`
	TransportMode      string `json:"transportMode"`
	PercentageProgress int    `json:"percentageProgress"`
	LastEventCode      string `json:"lastEventCode"`
	FromLocation       string `json:"fromLocation"`
	ToLocation         string `json:"toLocation"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
}
