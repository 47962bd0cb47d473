// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package oqjob loads and validates seismic hazard/risk job configurations.
//
// A job configuration is a small line-oriented file of [section] headers
// and key = value pairs describing the inputs of a probabilistic seismic
// hazard or risk calculation: exposure and logic tree files, ground motion
// parameters, risk parameters and output options. This package is the
// gatekeeper between those files and the calculation engine: it parses the
// source, coerces every value to its declared type, applies schema
// defaults, enforces the cross-field consistency rules and hands back an
// immutable JobConfig, or else the complete list of everything that is
// wrong with the file.
//
// The package never runs a calculation and never opens any of the model
// files a configuration references; it records their paths verbatim for
// the engine to consume.
//
// Loading is a pure transformation. Each call is independent, touches no
// global state and performs no I/O beyond reading its source, so loads may
// run concurrently without locking.
//
//	cfg, err := oqjob.LoadFile("job.ini")
//	if err != nil {
//		var errs params.ErrorList
//		if errors.As(err, &errs) {
//			report.WriteErrors(os.Stderr, "job.ini", errs)
//		}
//		return err
//	}
//	fmt.Println(cfg.Mode())
package oqjob
