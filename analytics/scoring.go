package analytics

import (
	"math"

	"influencer-crm-service/models"
)

const defaultMetricWeight = 0.10

var metricWeights = map[models.MetricType]float64{
	models.MetricReach:       0.20,
	models.MetricEngagement:  0.30,
	models.MetricFollowers:   0.15,
	models.MetricConversions: 0.35,
	models.MetricROI:         0.25,
}

// MetricWeight returns the scoring weight for a metric type.
func MetricWeight(t models.MetricType) float64 {
	if w, ok := metricWeights[t]; ok {
		return w
	}
	return defaultMetricWeight
}

// PerformanceScore reduces metrics to a 0-100 score as the weighted mean of
// the raw values scaled by 10. Values are not normalized, so callers must
// record each metric type in a consistent unit.
func PerformanceScore(metrics []models.PerformanceMetric) float64 {
	var weightedSum, totalWeight float64
	for _, m := range metrics {
		w := MetricWeight(m.MetricType)
		weightedSum += m.Value * w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, weightedSum/totalWeight*10))
}
