package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
	"github.com/dmitrijs2005/pixelprompt/internal/storage"
	"github.com/dmitrijs2005/pixelprompt/internal/vision"
)

// s3EventSource marks notification entries that originate from object
// storage; everything else is ignored.
const s3EventSource = "aws:s3"

// entryTimeout caps the download and classifier calls for a single entry.
// A timeout surfaces as a processing failure for that entry, eligible for
// redelivery.
const entryTimeout = 60 * time.Second

// ObjectDownloader fetches an uploaded object and its declared metadata.
type ObjectDownloader interface {
	Download(ctx context.Context, bucket, key string) (*storage.Object, error)
}

// Classifier produces a raw text description of an image. The output is an
// untrusted external contract, not a typed schema.
type Classifier interface {
	Describe(ctx context.Context, image []byte, contentType string) (string, error)
}

// RecordWriter persists an ImageRecord exactly once.
type RecordWriter interface {
	Put(ctx context.Context, rec *models.ImageRecord) error
}

// AnalysisService is triggered by object-creation notifications. It
// downloads the object, invokes the classifier, parses its output with a
// total fallback, and writes the metadata record.
type AnalysisService struct {
	store      ObjectDownloader
	classifier Classifier
	records    RecordWriter
	logger     logging.Logger
}

func NewAnalysisService(store ObjectDownloader, classifier Classifier, records RecordWriter, logger logging.Logger) *AnalysisService {
	return &AnalysisService{store: store, classifier: classifier, records: records, logger: logger}
}

// ProcessEvent handles a batch of notification entries. Entries are
// processed independently; a failure in one entry never aborts the others.
// The joined per-entry errors are returned so the event system can redeliver
// the notification per its own policy.
func (s *AnalysisService) ProcessEvent(ctx context.Context, event events.S3Event) error {
	var errs []error

	for _, record := range event.Records {
		if record.EventSource != s3EventSource {
			continue
		}

		bucket := record.S3.Bucket.Name
		key := decodeKey(record.S3.Object.Key)

		log := s.logger.With("entryId", uuid.NewString(), "bucket", bucket, "key", key)
		log.Info(ctx, "processing image")

		if err := s.processEntry(ctx, log, bucket, key); err != nil {
			log.Error(ctx, "failed to process image", "error", err.Error())
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}

		log.Info(ctx, "image processed and saved")
	}

	return errors.Join(errs...)
}

func (s *AnalysisService) processEntry(ctx context.Context, log logging.Logger, bucket, key string) error {
	ctx, cancel := context.WithTimeout(ctx, entryTimeout)
	defer cancel()

	obj, err := s.store.Download(ctx, bucket, key)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	raw, err := s.classifier.Describe(ctx, obj.Body, obj.ContentType)
	if err != nil {
		if errors.Is(err, common.ErrClassifier) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrClassifier, err)
	}

	// Malformed-but-successful classifier output is not an error: the
	// fallback still yields a usable record and is never retried.
	res, ok := vision.ParseResult(raw)
	if !ok {
		log.Warn(ctx, "classifier output not parseable, using fallback", "raw", raw)
	}

	now := timeNow().UTC()
	rec := &models.ImageRecord{
		UserID:      userIDFromKey(key),
		Timestamp:   strconv.FormatInt(now.UnixMilli(), 10),
		S3Key:       key,
		FileName:    path.Base(key),
		ContentType: obj.ContentType,
		FileSize:    obj.Size,
		Title:       res.Title,
		Caption:     res.Caption,
		Tags:        res.Tags,
		CreatedAt:   now.Format(time.RFC3339),
		ProcessedAt: now.Format(time.RFC3339),
	}

	return s.records.Put(ctx, rec)
}

// decodeKey reverses the URL encoding storage systems apply to event keys,
// including '+' substituted for spaces. Keys that fail to decode are used
// verbatim.
func decodeKey(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// userIDFromKey extracts the user segment of uploads/{userId}/{file} keys,
// falling back to the sentinel user when the segment is absent.
func userIDFromKey(key string) string {
	parts := strings.Split(key, "/")
	if len(parts) < 2 || parts[1] == "" {
		return common.DefaultUserID
	}
	return parts[1]
}
