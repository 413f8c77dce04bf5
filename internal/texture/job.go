package texture

import "context"

// Sink receives the outcome of a fetch
type Sink interface {
	SetForestTexture(ctx context.Context, texture string)
	ForestTextureFailed(ctx context.Context, err error)
}

// Job fetches a texture on the worker pool and hands the result to the sink.
// A failed fetch is reported to the sink, not to the pool.
type Job struct {
	Fetcher Fetcher
	Sink    Sink
}

// Process runs one fetch
func (j Job) Process(ctx context.Context) error {
	uri, err := j.Fetcher.Fetch(ctx)
	if err != nil {
		j.Sink.ForestTextureFailed(ctx, err)
		return nil
	}
	j.Sink.SetForestTexture(ctx, uri)
	return nil
}
