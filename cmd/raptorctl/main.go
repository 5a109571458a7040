// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command raptorctl demonstrates a Raptor R10 encode/decode round trip
// over a file. It carries no algorithmic logic: it partitions a file
// into source symbols, drives a raptor.Codec, and (for the decode
// path) reports whether the received symbol set was sufficient.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/beginning1126/raptorcore"
	"github.com/beginning1126/raptorcore/symbolio"
)

func main() {
	var (
		k          = flag.Int("k", 0, "number of source symbols to partition the file into")
		symbolSize = flag.Int("symbol-size", 0, "symbol payload size in bytes to report in the log (the size used is always derived from -k)")
		repair     = flag.Int("repair", 0, "number of extra repair symbols to generate beyond K")
		drop       = flag.Int("drop", 0, "number of leading source symbols to withhold, to exercise repair")
		usePrepass = flag.Bool("prepass", true, "run the prepass optimiser before the main solver")
		verbose    = flag.Bool("v", false, "verbose logging")
		inputPath  = flag.String("in", "", "input file to encode")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *inputPath == "" || *k == 0 {
		fmt.Fprintln(os.Stderr, "usage: raptorctl -in FILE -k N [-repair N] [-drop N] [-symbol-size N]")
		os.Exit(2)
	}

	if err := run(*inputPath, *k, *symbolSize, *repair, *drop, *usePrepass); err != nil {
		slog.Error("raptorctl failed", "error", err)
		os.Exit(1)
	}
}

func run(inputPath string, k, symbolSize, repair, drop int, usePrepass bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	symbols := symbolio.Partition(data, k)
	if symbolSize == 0 {
		symbolSize = symbols[0].Len()
	}
	slog.Info("partitioned input", "file", inputPath, "bytes", len(data), "k", k, "symbol_size", symbolSize)

	opts := raptor.DefaultOptions()
	opts.UsePrepass = usePrepass

	encoder, err := raptor.New(k, opts)
	if err != nil {
		return fmt.Errorf("constructing encoder: %w", err)
	}
	for esi, s := range symbols {
		encoder.AddSymbol(esi, s.Payload())
	}
	if err := encoder.CalculateIntermediateSymbols(); err != nil {
		return fmt.Errorf("computing intermediate symbols: %w", err)
	}

	decoder, err := raptor.New(k, opts)
	if err != nil {
		return fmt.Errorf("constructing decoder: %w", err)
	}
	for esi := drop; esi < k; esi++ {
		decoder.AddSymbol(esi, symbols[esi].Payload())
	}
	for r := 0; r < repair+drop; r++ {
		esi := k + r
		payload, err := encoder.Encode(esi)
		if err != nil {
			return fmt.Errorf("generating repair symbol %d: %w", esi, err)
		}
		decoder.AddSymbol(esi, payload)
	}

	if !decoder.CanDecode() {
		slog.Warn("insufficient symbols to decode", "received", k-drop+repair+drop, "needed", k)
		return fmt.Errorf("decoder cannot recover source with the symbols supplied")
	}
	if err := decoder.CalculateIntermediateSymbols(); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	recovered := make([]symbolio.Symbol, k)
	for esi := 0; esi < k; esi++ {
		payload, err := decoder.Encode(esi)
		if err != nil {
			return fmt.Errorf("re-encoding source ESI %d: %w", esi, err)
		}
		recovered[esi] = symbolio.Symbol{Data: payload[:len(symbols[esi].Data)], Padding: symbols[esi].Padding}
	}

	out := symbolio.Join(recovered)
	if len(out) > len(data) {
		out = out[:len(data)]
	}
	match := len(out) == len(data)
	for i := range data {
		if match && out[i] != data[i] {
			match = false
		}
	}
	slog.Info("round trip complete", "recovered_bytes", len(out), "matches_source", match)
	if !match {
		return fmt.Errorf("recovered data does not match source")
	}
	return nil
}
