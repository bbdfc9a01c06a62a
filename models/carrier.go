package models

// Carrier represents the carriers table used by the dashboard and the tracking worker.
type Carrier struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key                 string `gorm:"size:50;not null;unique" json:"key"`
	Label               string `gorm:"size:50;not null;unique" json:"label"`
	TrackingURLTemplate string `gorm:"size:256" json:"trackingUrlTemplate"`
	Icon                string `gorm:"size:256" json:"icon"`
}

// DefaultCarriers are seeded on migration.
var DefaultCarriers = []Carrier{
	{Key: "ups", Label: "UPS", TrackingURLTemplate: "https://www.ups.com/track?loc=en_US&tracknum=%s"},
	{Key: "uds", Label: "UDS", TrackingURLTemplate: "https://www.uniteddeliveryservice.com/track/barcode/%s"},
	{Key: "other", Label: "Other"},
}
