package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
	"influencer-crm-service/validation"
)

type recordingCreator struct {
	created  []services.InfluencerInput
	existing map[string]bool
	err      error
}

func (c *recordingCreator) Create(_ context.Context, in services.InfluencerInput) (*models.Influencer, error) {
	if c.err != nil {
		return nil, c.err
	}
	handle := services.NormalizeHandle(in.Handle)
	if c.existing[handle] {
		return nil, apperrors.Conflict("influencer handle %s already exists", handle)
	}
	c.created = append(c.created, in)
	return &models.Influencer{ID: uint(len(c.created)), Handle: handle}, nil
}

const sampleCSV = "Name,Handle,Followers,Engagement_Rate,Email,City\n" +
	"Jo Cooks,@jocooks,\"12,500\",4.2%,jo@example.com,Austin\n" +
	"No Handle,,100,1,,\n" +
	"Bad Count,badcount,lots,1,,\n" +
	"Dup,JoCooks,1,1,,\n" +
	"Taken,taken,1,1,,\n" +
	"Bad Mail,badmail,1,1,not-an-email,\n" +
	"Sam,sam,300,2.5,,Denver\n"

func TestImportInfluencers(t *testing.T) {
	creator := &recordingCreator{existing: map[string]bool{"taken": true}}
	imp := New(zap.NewNop(), creator, validation.New())
	storeID := uint(3)

	result, err := imp.Influencers(context.Background(), strings.NewReader(sampleCSV), &storeID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 5, result.Failed)
	require.Len(t, result.Errors, 5)

	rows := make([]int, 0, len(result.Errors))
	for _, e := range result.Errors {
		rows = append(rows, e.Row)
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7}, rows)
	assert.Contains(t, result.Errors[0].Message, "handle is required")
	assert.Contains(t, result.Errors[1].Message, "followers")
	assert.Contains(t, result.Errors[2].Message, "repeats row 2")
	assert.Contains(t, result.Errors[3].Message, "already exists")
	assert.Contains(t, result.Errors[4].Message, "email")

	require.Len(t, creator.created, 2)
	assert.Equal(t, int64(12500), creator.created[0].FollowersCount)
	assert.Equal(t, 4.2, creator.created[0].EngagementRate)
	assert.Equal(t, uint(3), *creator.created[0].StoreID)
	assert.Equal(t, "Denver", creator.created[1].City)
}

func TestImportRejectsMissingColumns(t *testing.T) {
	imp := New(zap.NewNop(), &recordingCreator{}, validation.New())

	_, err := imp.Influencers(context.Background(), strings.NewReader("name,email\nJo,jo@example.com\n"), nil)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Contains(t, err.Error(), "handle")

	_, err = imp.Influencers(context.Background(), strings.NewReader(""), nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestImportAbortsOnStorageFailure(t *testing.T) {
	imp := New(zap.NewNop(), &recordingCreator{err: errors.New("connection reset")}, validation.New())

	_, err := imp.Influencers(context.Background(), strings.NewReader("name,handle\nJo,jo\n"), nil)
	assert.EqualError(t, err, "connection reset")
}
