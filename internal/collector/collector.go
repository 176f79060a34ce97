// Package collector gathers one stats row per container by fanning out a
// fetch-and-derive task per container and joining on all of them.
package collector

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/containerd/errdefs"
	"github.com/rusenback/docker-stats/internal/docker"
	"github.com/rusenback/docker-stats/internal/metrics"
	"github.com/rusenback/docker-stats/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const DefaultFetchTimeout = 5 * time.Second

// Collector is safe for concurrent use; every Collect call is an
// independent cycle.
type Collector struct {
	source       docker.StatsSource
	fetchTimeout time.Duration
	concurrency  int
	log          *slog.Logger
	tracer       trace.Tracer
}

type Option func(*Collector)

// WithFetchTimeout bounds each container's stats call. Zero disables it.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Collector) { c.fetchTimeout = d }
}

// WithConcurrency caps in-flight stats calls. Zero runs one goroutine per
// container.
func WithConcurrency(n int) Option {
	return func(c *Collector) { c.concurrency = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) { c.log = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Collector) { c.tracer = t }
}

func New(source docker.StatsSource, opts ...Option) *Collector {
	c := &Collector{
		source:       source,
		fetchTimeout: DefaultFetchTimeout,
		log:          slog.Default(),
		tracer:       otel.Tracer("github.com/rusenback/docker-stats/internal/collector"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// outcome is one container's result slot. Exactly one of metric or err is
// meaningful once its task finished.
type outcome struct {
	metric model.Metric
	err    error
}

// Collect returns the sorted rows of every container whose stats could be
// fetched and derived. The only error is a failed enumeration; per-container
// failures are logged and the container is left out.
func (c *Collector) Collect(ctx context.Context) ([]model.Metric, error) {
	ctx, span := c.tracer.Start(ctx, "collector.Collect")
	defer span.End()

	containers, err := c.source.ListContainers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumerate containers")
		return nil, fmt.Errorf("enumerate containers: %w", err)
	}
	span.SetAttributes(attribute.Int("containers.total", len(containers)))

	outcomes := make([]outcome, len(containers))
	var g errgroup.Group
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i, cont := range containers {
		g.Go(func() error {
			outcomes[i] = c.collectOne(ctx, cont)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail the group

	result := make([]model.Metric, 0, len(containers))
	for i, o := range outcomes {
		if o.err != nil {
			c.logFailure(containers[i], o.err)
			continue
		}
		result = append(result, o.metric)
	}
	SortByMemory(result)

	span.SetAttributes(
		attribute.Int("containers.collected", len(result)),
		attribute.Int("containers.failed", len(containers)-len(result)),
	)
	return result, nil
}

func (c *Collector) collectOne(ctx context.Context, cont model.Container) outcome {
	ctx, span := c.tracer.Start(ctx, "collector.container", trace.WithAttributes(
		attribute.String("container.name", cont.Name),
		attribute.String("container.state", cont.State),
	))
	defer span.End()

	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	snap, err := c.source.ContainerStats(ctx, cont)
	if err == nil {
		var m model.Metric
		if m, err = metrics.Derive(cont.Name, snap); err == nil {
			return outcome{metric: m}
		}
		err = fmt.Errorf("derive %s: %w", cont.Name, err)
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "collect container stats")
	return outcome{err: err}
}

func (c *Collector) logFailure(cont model.Container, err error) {
	if errdefs.IsNotFound(err) {
		c.log.Warn("Container disappeared during stats collection.", "container", cont.Name, "err", err)
		return
	}
	c.log.Error("Failed to collect container stats.", "container", cont.Name, "state", cont.State, "err", err)
}

// SortByMemory orders rows by the numeric value of their formatted memory
// usage, largest first, with name as the tie breaker.
func SortByMemory(rows []model.Metric) {
	keys := make(map[string]float64, len(rows))
	for _, m := range rows {
		v, err := metrics.GiB(m)
		if err != nil {
			v = -1
		}
		keys[m.MemoryUsage] = v
	}
	slices.SortStableFunc(rows, func(a, b model.Metric) int {
		if n := cmp.Compare(keys[b.MemoryUsage], keys[a.MemoryUsage]); n != 0 {
			return n
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
