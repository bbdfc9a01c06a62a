package ups

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"influencer-crm-service/config"
	"influencer-crm-service/models"
	"influencer-crm-service/workers/shipments/processors"
)

// statusMap translates UPS status types. Label-created (M) and exception (X)
// have no shipment equivalent and leave the status untouched.
var statusMap = map[string]models.CourierStatus{
	"P":  models.CourierStatusSent,
	"I":  models.CourierStatusInTransit,
	"O":  models.CourierStatusInTransit,
	"D":  models.CourierStatusDelivered,
	"RS": models.CourierStatusReturned,
}

type TrackingProcessor struct {
	logger *zap.Logger
	config *config.UpsApiConfig
	client *http.Client
	now    func() time.Time
}

func NewTrackingProcessor(logger *zap.Logger, cfg *config.UpsApiConfig) *TrackingProcessor {
	return &TrackingProcessor{
		logger: logger,
		config: cfg,
		client: &http.Client{Timeout: 20 * time.Second},
		now:    time.Now,
	}
}

func (p *TrackingProcessor) Process(ctx context.Context, shipment models.CourierShipment) (*processors.CarrierTrackingResults, error) {
	details, err := p.getTrackingDetails(ctx, shipment.TrackingNumber)
	if err != nil {
		return nil, err
	}

	if len(details.Response.Shipments) == 0 || len(details.Response.Shipments[0].Packages) == 0 {
		return nil, fmt.Errorf("ups returned no package for %s", shipment.TrackingNumber)
	}
	pkg := details.Response.Shipments[0].Packages[0]

	result := &processors.CarrierTrackingResults{
		TrackingNumber: shipment.TrackingNumber,
		Status:         statusMap[pkg.CurrentStatus.Type],
		CarrierStatus:  pkg.CurrentStatus.Description,
		LastCheckedAt:  p.now(),
		ExpectedAt:     pkg.expectedAt(),
	}
	if len(pkg.Activity) > 0 {
		result.LastLocation = pkg.Activity[0].Location.Address.describe()
	}
	return result, nil
}

func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

func (p *TrackingProcessor) getAccessToken(ctx context.Context) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseUri+"/security/v1/oauth/token", strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+basicAuth(p.config.ClientId, p.config.ClientSecret))

	var authResponse OAuthResponse
	if err := p.do(req, &authResponse); err != nil {
		return "", fmt.Errorf("ups token: %w", err)
	}
	return authResponse.AccessToken, nil
}

func (p *TrackingProcessor) getTrackingDetails(ctx context.Context, trackingNumber string) (*ApiResponse, error) {
	u, err := url.Parse(p.config.BaseUri + "/api/track/v1/details/" + url.PathEscape(trackingNumber))
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("locale", "en_US")
	q.Set("returnSignature", "false")
	q.Set("returnMilestones", "false")
	q.Set("returnPOD", "false")
	u.RawQuery = q.Encode()

	accessToken, err := p.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("transId", uuid.New().String())
	req.Header.Set("transactionSrc", "influencer_crm")

	var apiResponse ApiResponse
	if err := p.do(req, &apiResponse); err != nil {
		return nil, fmt.Errorf("ups tracking %s: %w", trackingNumber, err)
	}
	return &apiResponse, nil
}

func (p *TrackingProcessor) do(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
