// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils

// Map will create a new slice of type [OUT] from which every element comes from [slice] after the function
// [f] has been applied to it.
func Map[IN, OUT any, S ~[]IN](slice S, f func(IN) OUT) []OUT {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		ret[i] = f(in)
	}
	return ret
}

// Filter returns a new slice of only the elements of [slice] for which keep returns true, order is kept.
func Filter[S ~[]T, T any](slice S, keep func(T) bool) S {
	ret := make(S, 0, len(slice))
	for _, item := range slice {
		if keep(item) {
			ret = append(ret, item)
		}
	}
	return ret
}
