package uds

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"influencer-crm-service/models"
	"influencer-crm-service/workers/shipments/processors"
)

const trackingURLTemplate = "https://www.uniteddeliveryservice.com/track/barcode/%s"

// statusMap covers the step titles of the UDS tracking page. "Shipment
// Notification" means the label exists but UDS has not received the parcel.
var statusMap = map[string]models.CourierStatus{
	"Received":         models.CourierStatusInTransit,
	"Out for Delivery": models.CourierStatusInTransit,
	"Delivered":        models.CourierStatusDelivered,
}

var deliveredAtPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*-\s*(\d{1,2}:\d{2}:\d{2}\s*[AP]M)`)

type TrackingProcessor struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTrackingProcessor(logger *zap.Logger) *TrackingProcessor {
	return &TrackingProcessor{logger: logger, now: time.Now}
}

func (p *TrackingProcessor) Process(ctx context.Context, shipment models.CourierShipment) (*processors.CarrierTrackingResults, error) {
	url := shipment.TrackingURL
	if url == "" {
		url = fmt.Sprintf(trackingURLTemplate, shipment.TrackingNumber)
	}

	now := p.now()
	title := ""
	lastLoc := shipment.LastLocation
	expected := shipment.ExpectedAt

	c := colly.NewCollector(colly.StdlibContext(ctx))
	c.SetRequestTimeout(20 * time.Second)

	c.OnHTML(".multi-step.numbered li.current", func(e *colly.HTMLElement) {
		title = strings.TrimSpace(e.ChildText(".wrap > p.title"))
	})

	c.OnHTML(".multi-step.numbered + table", func(e *colly.HTMLElement) {
		header := e.DOM.Find("td.dkBlue").First()
		if !strings.Contains(header.Text(), "Expected Delivery Day:") {
			return
		}

		e.ForEach("tr", func(_ int, row *colly.HTMLElement) {
			cells := row.DOM.Find("td")
			if cells.Length() != 2 {
				return
			}
			dateStr := strings.TrimSpace(cells.Eq(0).Text()) // "Mon Jun 9"
			timeStr := strings.TrimSpace(strings.ReplaceAll(cells.Eq(1).Text(), "by", " "))

			combined := fmt.Sprintf("%s %d %s", dateStr, now.Year(), strings.Join(strings.Fields(timeStr), " "))
			parsed, err := time.ParseInLocation("Mon Jan 2 2006 3:04 PM", combined, now.Location())
			if err != nil {
				p.logger.Debug("Unparseable expected delivery", zap.String("value", combined), zap.Error(err))
				return
			}
			expected = &parsed
		})
	})

	c.OnHTML("td", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(strings.ReplaceAll(e.Text, "\u00a0", " "))

		// "The package has departed CITY, ST sort facility and is out for delivery."
		if strings.Contains(text, "The package has departed") &&
			strings.Contains(text, "sort facility and is out for delivery") {
			prefix := "departed "
			suffix := " sort facility"

			start := strings.Index(text, prefix)
			end := strings.Index(text, suffix)
			if start != -1 && end > start+len(prefix) {
				lastLoc = strings.TrimSpace(text[start+len(prefix) : end])
			}
		}

		if strings.Contains(text, "The package is delivered.") {
			matches := deliveredAtPattern.FindStringSubmatch(text)
			if len(matches) != 3 {
				return
			}
			combined := matches[1] + " " + matches[2]
			parsed, err := time.ParseInLocation("2006-01-02 3:04:05 PM", combined, now.Location())
			if err != nil {
				p.logger.Error("Failed to parse delivery time", zap.String("datetime", combined), zap.Error(err))
				return
			}
			expected = &parsed
		}
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("uds tracking %s: %w", shipment.TrackingNumber, err)
	}

	return &processors.CarrierTrackingResults{
		TrackingNumber: shipment.TrackingNumber,
		Status:         statusMap[title],
		CarrierStatus:  title,
		LastLocation:   lastLoc,
		LastCheckedAt:  now,
		ExpectedAt:     expected,
	}, nil
}
