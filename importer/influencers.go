// Package importer loads influencers from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
)

// MaxRows bounds a single import.
const MaxRows = 5000

type Creator interface {
	Create(ctx context.Context, in services.InfluencerInput) (*models.Influencer, error)
}

type StructValidator interface {
	Struct(s any) error
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Result struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

func (r *Result) fail(row int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Message: message(err)})
}

var columnAliases = map[string]string{
	"name":            "name",
	"handle":          "handle",
	"username":        "handle",
	"platform":        "platform",
	"email":           "email",
	"phone":           "phone",
	"followers":       "followers",
	"followerscount":  "followers",
	"followers_count": "followers",
	"engagementrate":  "engagementRate",
	"engagement_rate": "engagementRate",
	"engagement":      "engagementRate",
	"category":        "category",
	"city":            "city",
}

var requiredColumns = []string{"name", "handle"}

type Importer struct {
	logger   *zap.Logger
	creator  Creator
	validate StructValidator
}

func New(logger *zap.Logger, creator Creator, validate StructValidator) *Importer {
	return &Importer{logger: logger, creator: creator, validate: validate}
}

// Influencers imports every data row independently; a bad row never aborts
// the others. Row numbers are 1-based file lines, the header being row 1.
func (i *Importer) Influencers(ctx context.Context, r io.Reader, storeID *uint) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.BadRequest("file is empty")
	}
	if err != nil {
		return nil, apperrors.BadRequest("read header: %v", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: []RowError{}}
	seen := map[string]int{}
	row := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			result.fail(row, fmt.Errorf("malformed row: %w", err))
			continue
		}
		if row-1 > MaxRows {
			return nil, apperrors.BadRequest("import is limited to %d rows", MaxRows)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		in, err := parseRow(columns, record)
		if err != nil {
			result.fail(row, err)
			continue
		}
		in.StoreID = storeID

		if err := i.validate.Struct(in); err != nil {
			result.fail(row, err)
			continue
		}

		handle := services.NormalizeHandle(in.Handle)
		if first, dup := seen[handle]; dup {
			result.fail(row, fmt.Errorf("handle %s repeats row %d", handle, first))
			continue
		}
		seen[handle] = row

		if _, err := i.creator.Create(ctx, in); err != nil {
			if apperrors.KindOf(err) == apperrors.KindInternal {
				return nil, err
			}
			result.fail(row, err)
			continue
		}
		result.Imported++
	}

	i.logger.Info("Influencer import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := map[string]int{}
	for idx, raw := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		if name, ok := columnAliases[key]; ok {
			if _, dup := columns[name]; !dup {
				columns[name] = idx
			}
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.BadRequest("missing required column %q", name)
		}
	}
	return columns, nil
}

func parseRow(columns map[string]int, record []string) (services.InfluencerInput, error) {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	in := services.InfluencerInput{
		Name:     get("name"),
		Handle:   get("handle"),
		Platform: get("platform"),
		Email:    get("email"),
		Phone:    get("phone"),
		Category: get("category"),
		City:     get("city"),
	}

	if raw := strings.ReplaceAll(get("followers"), ",", ""); raw != "" {
		followers, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, fmt.Errorf("followers must be a whole number, got %q", raw)
		}
		in.FollowersCount = followers
	}

	if raw := strings.TrimSuffix(get("engagementRate"), "%"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, fmt.Errorf("engagementRate must be a number, got %q", raw)
		}
		in.EngagementRate = rate
	}

	return in, nil
}

func message(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
