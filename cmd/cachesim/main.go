// Command cachesim runs a trace through one or more cache replacement
// policies and prints the resulting step log as JSON.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/host"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/metrics"
)

type policyList []string

func (p *policyList) String() string { return strings.Join(*p, ",") }

func (p *policyList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	var (
		capacity      = flag.Uint64("capacity", 4, "cache capacity (entries)")
		animate       = flag.Bool("animate", true, "record a step per operation instead of sparse snapshots")
		snapshotEvery = flag.Uint64("snapshot-every", 1000, "sparse-mode snapshot interval")
		tracePath     = flag.String("trace", "-", "trace file path, or - for stdin")
		showMetrics   = flag.Bool("metrics", false, "print a Prometheus text snapshot per policy to stderr")
	)
	var policies policyList
	flag.Var(&policies, "policy", "policy to run (repeatable): LRU, FIFO, LFU or ARC")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	traceText, err := readTrace(*tracePath)
	if err != nil {
		log.WithError(err).Fatal("failed to read trace")
	}

	req := host.Request{
		Capacity:      *capacity,
		Policies:      []string(policies),
		Animate:       *animate,
		SnapshotEvery: *snapshotEvery,
		TraceText:     traceText,
	}

	resp, err := host.Dispatch(context.Background(), req)
	if err != nil {
		log.WithError(err).Fatal("dispatch failed")
	}

	if *showMetrics {
		printMetrics(log, resp)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.WithError(err).Fatal("failed to encode response")
	}
}

func readTrace(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// printMetrics recomputes a PromSink from each result's Stats and writes
// its text exposition to stderr; no HTTP listener is ever started.
func printMetrics(log *logrus.Logger, resp host.Response) {
	for _, r := range resp.Results {
		sink := metrics.NewPromSink(r.Policy)
		sink.AddStats(r.Stats)

		var buf bytes.Buffer
		if err := sink.WriteText(&buf); err != nil {
			log.WithError(err).Warn("failed to render metrics")
			continue
		}
		fmt.Fprint(os.Stderr, buf.String())
	}
}
