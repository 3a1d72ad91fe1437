// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListenAddress is returned by NewServer when the config carries no
// HTTP address, so there is nothing to serve the API on.
var errNoListenAddress = errors.New("no HTTP listen address configured")
