// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Frontend defines the lifecycle contract of a client front end such as the
// interactive menu or a scripted scenario.
type Frontend interface {
	// Run drives the front end and blocks until it exits.
	Run(ctx context.Context) error
}

// FrontendFunc adapts a plain function to [Frontend].
type FrontendFunc func(ctx context.Context) error

func (f FrontendFunc) Run(ctx context.Context) error {
	return f(ctx)
}
