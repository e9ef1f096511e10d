package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted per checkout.
const (
	MetricOrdersPlaced  = "OrdersPlaced"
	MetricOrderValue    = "OrderValue"
	MetricItemsPerOrder = "ItemsPerOrder"
)

// Metrics publishes storefront metrics to CloudWatch under a single namespace.
type Metrics struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

func NewMetrics(client CloudWatchAPI, namespace string) *Metrics {
	return &Metrics{
		CloudWatch: client,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// RecordCheckout emits one data point for each checkout metric in a single PutMetricData call.
func (m *Metrics) RecordCheckout(ctx context.Context, total float64, items int) error {
	now := m.nowFunc()
	data := []cwtypes.MetricDatum{
		datum(MetricOrdersPlaced, 1, cwtypes.StandardUnitCount, now),
		datum(MetricOrderValue, total, cwtypes.StandardUnitNone, now),
		datum(MetricItemsPerOrder, float64(items), cwtypes.StandardUnitCount, now),
	}
	_, err := m.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  awsString(m.Namespace),
		MetricData: data,
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func datum(name string, value float64, unit cwtypes.StandardUnit, ts time.Time) cwtypes.MetricDatum {
	return cwtypes.MetricDatum{
		MetricName: awsString(name),
		Value:      &value,
		Unit:       unit,
		Timestamp:  &ts,
	}
}
