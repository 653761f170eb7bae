package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/application/usecase"
	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/port"
	"github.com/telelink/customer-analytics/internal/domain/service"
	"github.com/telelink/customer-analytics/pkg/events"
)

type mockPredictionRepo struct {
	mu         sync.Mutex
	saved      []*model.Prediction
	saveErr    error
	findResult *model.Prediction
	findErr    error
	history    []*model.Prediction
	historyErr error
	stats      port.Statistics
	statsErr   error
}

func (m *mockPredictionRepo) Save(_ context.Context, p *model.Prediction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, p)
	return nil
}

func (m *mockPredictionRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Prediction, error) {
	return m.findResult, m.findErr
}

func (m *mockPredictionRepo) FindByCustomerID(_ context.Context, _ uuid.UUID, limit, _ int) ([]*model.Prediction, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	if limit < len(m.history) {
		return m.history[:limit], nil
	}
	return m.history, nil
}

func (m *mockPredictionRepo) Statistics(_ context.Context) (port.Statistics, error) {
	return m.stats, m.statsErr
}

type mockEventPublisher struct {
	mu         sync.Mutex
	published  []events.DomainEvent
	publishErr error
}

func (m *mockEventPublisher) Publish(_ context.Context, domainEvents ...events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, domainEvents...)
	return nil
}

// newTestPipeline builds a pipeline over a two-tree ensemble keyed to
// customer_service_calls and the voicemail plan, with a linear CLV model over
// the day charge.
func newTestPipeline(t *testing.T) *service.ScoringPipeline {
	t.Helper()

	spec := &service.FeatureSpec{
		Version: "test-1",
		Columns: []string{
			service.ColCustomerServiceCalls,
			service.ColVoicemailPlan,
			service.ColDayCharge,
			service.ColState,
			service.ColAreaCode,
		},
		States:    map[string]float64{"CA": 4, "NY": 34},
		AreaCodes: map[string]float64{"408": 0, "415": 1},
		ClassifierColumns: []string{
			service.ColCustomerServiceCalls,
			service.ColVoicemailPlan,
		},
		RegressorColumns: []string{service.ColDayCharge},
	}

	encoder, err := service.NewFeatureEncoder(spec)
	require.NoError(t, err)

	trees := []service.DecisionTree{
		{Nodes: []service.TreeNode{
			{Feature: 0, Threshold: 4, Left: 1, Right: 2},
			{Leaf: true, Value: 0.1},
			{Leaf: true, Value: 0.8},
		}},
		{Nodes: []service.TreeNode{
			{Feature: 1, Threshold: 0.5, Left: 1, Right: 2},
			{Leaf: true, Value: 0.3},
			{Leaf: true, Value: 0.1},
		}},
	}
	classifier, err := service.NewChurnClassifier(trees, 0.31, 2)
	require.NoError(t, err)

	regressor, err := service.NewCLVRegressor(100, []float64{50})
	require.NoError(t, err)

	scorer, err := service.NewRiskScorer(service.DefaultRiskBands())
	require.NoError(t, err)

	pipeline, err := service.NewScoringPipeline(encoder, classifier, regressor, scorer)
	require.NoError(t, err)
	return pipeline
}

func scoreRequest(customerID uuid.UUID) dto.ScoreCustomerRequest {
	return dto.ScoreCustomerRequest{
		CustomerID:           customerID,
		AccountLength:        128,
		State:                "CA",
		AreaCode:             "415",
		VoicemailPlan:        true,
		VoicemailMessages:    25,
		Day:                  dto.PeriodUsage{Minutes: 180, Calls: 100, Charge: 31},
		Evening:              dto.PeriodUsage{Minutes: 200, Calls: 90, Charge: 17},
		Night:                dto.PeriodUsage{Minutes: 210, Calls: 95, Charge: 9.5},
		International:        dto.PeriodUsage{Minutes: 10, Calls: 3, Charge: 2.7},
		CustomerServiceCalls: 1,
	}
}

func TestScoreCustomer_Execute(t *testing.T) {
	repo := &mockPredictionRepo{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewScoreCustomer(repo, publisher, newTestPipeline(t), nil)

	customerID := uuid.New()
	resp, err := uc.Execute(context.Background(), scoreRequest(customerID))
	require.NoError(t, err)

	// csc=1 -> 0.1, voicemail -> 0.1, mean 0.1: LOW band.
	assert.Equal(t, customerID, resp.CustomerID)
	assert.InDelta(t, 0.1, resp.ChurnProbability, 1e-9)
	assert.Equal(t, "LOW", resp.RiskLevel)
	assert.Equal(t, "STANDARD_MAINTENANCE", resp.Recommendation)
	assert.Equal(t, "VERY_HIGH", resp.ConfidenceLabel)
	assert.Equal(t, "1650", resp.CLVEstimate)

	require.Len(t, repo.saved, 1)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, resp.ID.String(), publisher.published[0].AggregateID())
}

func TestScoreCustomer_Execute_HighRiskPublishesAlert(t *testing.T) {
	repo := &mockPredictionRepo{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewScoreCustomer(repo, publisher, newTestPipeline(t), nil)

	req := scoreRequest(uuid.New())
	req.CustomerServiceCalls = 6
	req.VoicemailPlan = false
	req.VoicemailMessages = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// csc=6 -> 0.8, no voicemail -> 0.3, mean 0.55: HIGH band.
	assert.Equal(t, "HIGH", resp.RiskLevel)
	assert.Equal(t, "IMMEDIATE_RETENTION_OUTREACH", resp.Recommendation)
	assert.Len(t, publisher.published, 2)
}

func TestScoreCustomer_Execute_ValidationError(t *testing.T) {
	repo := &mockPredictionRepo{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewScoreCustomer(repo, publisher, newTestPipeline(t), nil)

	req := scoreRequest(uuid.New())
	req.State = "ZZ"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.saved)
	assert.Empty(t, publisher.published)
}

func TestScoreCustomer_Execute_SaveFailure(t *testing.T) {
	repo := &mockPredictionRepo{saveErr: fmt.Errorf("connection refused")}
	publisher := &mockEventPublisher{}
	uc := usecase.NewScoreCustomer(repo, publisher, newTestPipeline(t), nil)

	_, err := uc.Execute(context.Background(), scoreRequest(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save prediction")
	assert.Empty(t, publisher.published)
}

func TestScoreCustomer_Execute_PublishFailure(t *testing.T) {
	repo := &mockPredictionRepo{}
	publisher := &mockEventPublisher{publishErr: fmt.Errorf("broker unavailable")}
	uc := usecase.NewScoreCustomer(repo, publisher, newTestPipeline(t), nil)

	_, err := uc.Execute(context.Background(), scoreRequest(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish events")
}
