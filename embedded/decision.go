// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package embedded provides the marker interfaces embedded by wingman types.
package embedded

type Decision interface {
	decision()
}
