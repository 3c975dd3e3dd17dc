package service

// Wire shapes of the tracking backend. Pointers mark fields the backend may
// omit; the mapper decides which of them are required.

type searchResponse struct {
	Result   []searchResult `json:"result"`
	Warnings []string       `json:"warnings"`
}

type searchResult struct {
	ID                 *string `json:"id"`
	STT                string  `json:"stt"`
	TransportMode      string  `json:"transportMode"`
	PercentageProgress *int    `json:"percentageProgress"`
	LastEventCode      string  `json:"lastEventCode"`
	FromLocation       string  `json:"fromLocation"`
	ToLocation         string  `json:"toLocation"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
}

type landSttResponse struct {
	SttNumber  string           `json:"sttNumber"`
	Product    string           `json:"product"`
	References *references      `json:"references"`
	Goods      *goods           `json:"goods"`
	Location   *networkLocation `json:"location"`
	Events     []trackingEvent  `json:"events"`
	Packages   []packageItem    `json:"packages"`
}

type references struct {
	Shipper                      []string `json:"shipper"`
	Consignee                    []string `json:"consignee"`
	WaybillAndConsignmentNumbers []string `json:"waybillAndConsignementNumbers"`
}

type goods struct {
	Pieces        *int         `json:"pieces"`
	Weight        *measurement `json:"weight"`
	Volume        *measurement `json:"volume"`
	LoadingMeters *measurement `json:"loadingMeters"`
}

type measurement struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

type networkLocation struct {
	CollectFrom    *place `json:"collectFrom"`
	DeliverTo      *place `json:"deliverTo"`
	ShipperPlace   *place `json:"shipperPlace"`
	ConsigneePlace *place `json:"consigneePlace"`
}

type place struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	PostCode    string `json:"postCode"`
}

type trackingEvent struct {
	Code     string         `json:"code"`
	Date     string         `json:"date"`
	Comment  *string        `json:"comment"`
	Location *eventLocation `json:"location"`
	Reasons  []reason       `json:"reasons"`
}

type eventLocation struct {
	Name        *string `json:"name"`
	Code        string  `json:"code"`
	CountryCode string  `json:"countryCode"`
}

type reason struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type packageItem struct {
	ID     string         `json:"id"`
	Events []packageEvent `json:"events"`
}

type packageEvent struct {
	Code        string  `json:"code"`
	Date        string  `json:"date"`
	Location    *string `json:"location"`
	CountryCode string  `json:"countryCode"`
	Comment     *string `json:"comment"`
}
