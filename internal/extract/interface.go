package extract

import "context"

// Extractor turns a free-form utterance into task drafts. Implementations
// are stateless; callers must not depend on which strategy produced the
// drafts. Failures are always a classified *Error.
type Extractor interface {
	Extract(ctx context.Context, utterance string, ref Reference) (Result, error)
}

// WithFallback returns an extractor that delegates to primary and, only
// when the primary fails with a service failure, retries with fallback.
// Unrecognized results are not retried: both strategies agree on what an
// empty utterance is.
func WithFallback(primary, fallback Extractor) Extractor {
	return &fallbackExtractor{primary: primary, fallback: fallback}
}

type fallbackExtractor struct {
	primary  Extractor
	fallback Extractor
}

func (f *fallbackExtractor) Extract(ctx context.Context, utterance string, ref Reference) (Result, error) {
	res, err := f.primary.Extract(ctx, utterance, ref)
	if err != nil && IsServiceFailure(err) {
		return f.fallback.Extract(ctx, utterance, ref)
	}
	return res, err
}
