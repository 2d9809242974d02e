package checks

import (
	"context"
	"time"

	"card-assets/core/storage"
)

// Bucket check outcomes.
const (
	BucketOK      = "ok"
	BucketMissing = "missing"
	BucketError   = "error"
	BucketSkipped = "skipped"
)

// StorageReport strictly types the result of a storage check.
type StorageReport struct {
	Available bool   `json:"available"`
	Bucket    string `json:"bucket,omitempty"`
	Status    string `json:"bucket_status"`
	Error     string `json:"error,omitempty"`
}

// Healthy reports whether signed URLs can be served.
func (r StorageReport) Healthy() bool {
	return r.Available && r.Status == BucketOK
}

// CheckStorage verifies that the storage handle is usable and the bucket reachable.
// The bucket probe is bounded by timeout.
func CheckStorage(ctx context.Context, handle *storage.Handle, timeout time.Duration) StorageReport {
	client, err := handle.Client()
	if err != nil {
		return StorageReport{Status: BucketSkipped, Error: err.Error()}
	}

	report := StorageReport{Available: true, Bucket: handle.Bucket()}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, handle.Bucket())
	switch {
	case err != nil:
		report.Status = BucketError
		report.Error = err.Error()
	case !exists:
		report.Status = BucketMissing
	default:
		report.Status = BucketOK
	}
	return report
}
