package ups

import (
	"strings"
	"time"
)

type OAuthResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   string `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

type Status struct {
	Code                  string `json:"code"`
	Description           string `json:"description"`
	SimplifiedDescription string `json:"simplifiedTextDescription"`
	StatusCode            string `json:"statusCode"`
	Type                  string `json:"type"`
}

type Address struct {
	City        string `json:"city"`
	State       string `json:"stateProvince"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// describe renders "City, ST" or whichever part is present.
func (a Address) describe() string {
	parts := make([]string, 0, 2)
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.State != "" {
		parts = append(parts, a.State)
	} else if a.CountryCode != "" {
		parts = append(parts, a.CountryCode)
	}
	return strings.Join(parts, ", ")
}

type Location struct {
	Address Address `json:"address"`
}

type Activity struct {
	Location Location `json:"location"`
	Date     string   `json:"gmtDate"`
	Time     string   `json:"gmtTime"`
	Status   Status   `json:"status"`
}

type DeliveryDate struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

type DeliveryTime struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
}

type Package struct {
	TrackingNumber string         `json:"trackingNumber"`
	DeliveryTime   DeliveryTime   `json:"deliveryTime"`
	DeliveryDate   []DeliveryDate `json:"deliveryDate"`
	CurrentStatus  Status         `json:"currentStatus"`
	Activity       []Activity     `json:"activity"`
}

// expectedAt combines the scheduled (or rescheduled) delivery date with the
// end of the delivery window. Dates come as YYYYMMDD, times as HHMMSS.
func (p Package) expectedAt() *time.Time {
	var date string
	for _, d := range p.DeliveryDate {
		if d.Type == "RDD" || d.Type == "SDD" || date == "" {
			date = d.Date
		}
	}
	if date == "" {
		return nil
	}

	layout, value := "20060102", date
	if p.DeliveryTime.EndTime != "" {
		layout, value = "20060102150405", date+p.DeliveryTime.EndTime
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil
	}
	return &t
}

type Shipment struct {
	InquiryNumber string    `json:"inquiryNumber"`
	Packages      []Package `json:"package"`
}

type TrackingResponse struct {
	Shipments []Shipment `json:"shipment"`
}

type ApiResponse struct {
	Response TrackingResponse `json:"trackResponse"`
}
