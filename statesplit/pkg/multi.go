package statesplit

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type runState struct {
	cfg Config
	results []SampleResult
	manifest *Manifest

	mu sync.Mutex
	failed []error
}

func (s *runState) runSample(ctx context.Context, i int) error {
	sample := s.cfg.Samples[i]
	if e := ctx.Err(); e != nil {
		return &SampleError{Sample: sample, Err: e}
	}

	res, err := SplitSample(ctx, s.cfg, sample)
	s.results[i] = res

	if s.manifest != nil {
		if e := s.manifest.Add(res); e != nil && err == nil {
			return handle("manifest: %w")(e)
		}
	}

	if err == nil {
		return nil
	}
	if !s.cfg.KeepGoing {
		return err
	}

	s.cfg.logger().Printf("Skipping failed sample: %v\n", err)
	s.mu.Lock()
	s.failed = append(s.failed, err)
	s.mu.Unlock()
	return nil
}

// Run partitions every sample in cfg. Results are returned in sample order;
// samples that never started have only their Sample field set.
//
// Without KeepGoing the first failure cancels the remaining samples and is
// returned. With KeepGoing every sample is attempted and the failures are
// returned together as a *FailedSamplesError.
func Run(ctx context.Context, cfg Config) (results []SampleResult, err error) {
	h := handle("Run: %w")
	if e := cfg.Validate(); e != nil { return nil, h(e) }
	if e := EnsureDir(cfg.OutDir, cfg.logger()); e != nil { return nil, h(e) }

	s := &runState{cfg: cfg, results: make([]SampleResult, len(cfg.Samples))}
	for i, sample := range cfg.Samples {
		s.results[i].Sample = sample
	}

	if cfg.Manifest != "" {
		m, e := CreateManifest(cfg.Manifest)
		if e != nil { return s.results, h(e) }
		s.manifest = m
		defer func() {
			if e := m.Close(); e != nil && err == nil {
				err = h(e)
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.threads())
	for i := range cfg.Samples {
		i := i
		g.Go(func() error {
			return s.runSample(gctx, i)
		})
	}
	if e := g.Wait(); e != nil {
		return s.results, e
	}

	if len(s.failed) > 0 {
		return s.results, &FailedSamplesError{Total: len(cfg.Samples), Errs: s.failed}
	}
	return s.results, nil
}
