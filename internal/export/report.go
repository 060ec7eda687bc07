package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/types"
)

const defaultLinkExpiry = 15 * time.Minute

// ObjectPutter is the subset of the S3 client the exporter writes with.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// URLPresigner signs download links for stored reports.
type URLPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Report is the archived document.
type Report struct {
	UserID      uuid.UUID             `json:"user_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Insights    *types.HealthInsights `json:"insights"`
}

// ReportExporter archives insight dashboards as JSON objects and hands out
// short-lived download links.
type ReportExporter struct {
	putter    ObjectPutter
	presigner URLPresigner
	bucket    string
	expiry    time.Duration
	log       *logger.Logger
	now       func() time.Time
}

// NewReportExporter creates a new ReportExporter instance
func NewReportExporter(client *s3.Client, bucket string, expiry time.Duration, log *logger.Logger) *ReportExporter {
	return newReportExporter(client, s3.NewPresignClient(client), bucket, expiry, log)
}

func newReportExporter(putter ObjectPutter, presigner URLPresigner, bucket string, expiry time.Duration, log *logger.Logger) *ReportExporter {
	if expiry <= 0 {
		expiry = defaultLinkExpiry
	}
	return &ReportExporter{
		putter:    putter,
		presigner: presigner,
		bucket:    bucket,
		expiry:    expiry,
		log:       log.With("component", "report_export"),
		now:       time.Now,
	}
}

// ReportKey is the object key of a report generated at the given time.
func ReportKey(userID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("reports/%s/%s.json", userID, at.UTC().Format("20060102T150405Z"))
}

// Export writes the dashboard and returns a presigned GET link.
func (e *ReportExporter) Export(ctx context.Context, userID uuid.UUID, insights *types.HealthInsights) (*types.ExportedReport, error) {
	at := e.now()
	body, err := json.Marshal(Report{UserID: userID, GeneratedAt: at.UTC(), Insights: insights})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	key := ReportKey(userID, at)
	_, err = e.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	signed, err := e.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(e.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(e.expiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign report url: %w", err)
	}

	e.log.Info("health report exported", "user_id", userID, "key", key)
	return &types.ExportedReport{
		Key:       key,
		URL:       signed.URL,
		ExpiresIn: int(e.expiry.Seconds()),
	}, nil
}
