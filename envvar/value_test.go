// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	var unset Value[int]
	v, ok := unset.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, unset.IsSet())
	assert.Equal(t, 7, unset.Or(7))

	zero := ValueOf(0)
	v, ok = zero.Value()
	assert.True(t, ok)
	assert.Zero(t, v)
	assert.True(t, zero.IsSet())
	assert.Equal(t, 0, zero.Or(7))
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"plain value", 5, 5},
		{"set value", ValueOf("x"), "x"},
		{"set empty string", ValueOf(""), ""},
		{"unset value", Value[string]{}, nil},
		{"set slice", ValueOf([]string{"a"}), []string{"a"}},
		{"nested value", ValueOf(ValueOf(1)), ValueOf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, unwrap(tt.in))
		})
	}
}
