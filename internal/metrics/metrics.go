package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/aws"
)

// Recorder publishes business metrics to CloudWatch. All methods are
// best-effort: a metrics outage never affects request handling. A nil
// Recorder is safe to call.
type Recorder struct {
	client    aws.CloudWatchAPI
	namespace string
}

// NewRecorder creates a Recorder for the given namespace.
func NewRecorder(client aws.CloudWatchAPI, namespace string) *Recorder {
	return &Recorder{client: client, namespace: namespace}
}

// OrderPlaced records one placed order and its revenue, dimensioned by
// payment method.
func (r *Recorder) OrderPlaced(ctx context.Context, method string, finalTotal float64) {
	r.put(ctx,
		cwtypes.MetricDatum{
			MetricName: awsString("OrdersPlaced"),
			Value:      awsFloat(1),
			Unit:       cwtypes.StandardUnitCount,
			Dimensions: []cwtypes.Dimension{
				{Name: awsString("Method"), Value: &method},
			},
		},
		cwtypes.MetricDatum{
			MetricName: awsString("OrderRevenue"),
			Value:      &finalTotal,
			Unit:       cwtypes.StandardUnitNone,
			Dimensions: []cwtypes.Dimension{
				{Name: awsString("Method"), Value: &method},
			},
		},
	)
}

// PaymentVerificationFailed records a rejected payment signature.
func (r *Recorder) PaymentVerificationFailed(ctx context.Context) {
	r.put(ctx, cwtypes.MetricDatum{
		MetricName: awsString("PaymentVerificationFailed"),
		Value:      awsFloat(1),
		Unit:       cwtypes.StandardUnitCount,
	})
}

func (r *Recorder) put(ctx context.Context, data ...cwtypes.MetricDatum) {
	if r == nil || r.client == nil {
		return
	}
	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  &r.namespace,
		MetricData: data,
	})
	if err != nil {
		log.Warn().Err(err).Msg("metrics: put metric data failed")
	}
}

func awsString(s string) *string  { return &s }
func awsFloat(f float64) *float64 { return &f }
