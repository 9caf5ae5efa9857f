// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the session client façade and the application
// runtime around it.
//
// [Client] turns every service result into a printed diagnostic plus a
// sentinel value (nil, false) so that callers never handle errors or panics.
// [App] runs the startup reachability check and dispatches to the menu, the
// scripted scenarios or a single health probe.
package client
