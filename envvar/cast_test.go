// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"1", true, false},
		{"YeS", true, false},
		{"True", true, false},
		{"true", true, false},
		{"y", true, false},
		{"T", true, false},
		{"on", true, false},
		{" 1 ", true, false},
		{"YES\t", true, false},
		{"\tYES\t", true, false},
		{"false", false, false},
		{"no", false, false},
		{"0", false, false},
		{"  NO  ", false, false},
		{"N", false, false},
		{"f", false, false},
		{"OFF", false, false},
		{"", false, false},
		{" ", false, false},
		{"nope", false, true},
		{"2", false, true},
		{"-1", false, true},
		{"enabled", false, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := ParseBool(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBool)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessor_Str(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "Hello World", "Hello World"},
		{"strips whitespace", "  hello  ", "hello"},
		{"strips tabs and newlines", "\thello\n", "hello"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(map[string]string{"TEST_STR": tt.value})
			got, err := a.Str("TEST_STR")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Or("unexpected"))
		})
	}
}

func TestAccessor_StrMissing(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)

	_, err := a.Str("DOES_NOT_EXIST")
	assert.ErrorIs(t, err, ErrMissing)

	got, err := a.Str("DOES_NOT_EXIST", Default("  fallback  "))
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.Or(""))

	got, err = a.Str("DOES_NOT_EXIST", AllowNone())
	require.NoError(t, err)
	assert.False(t, got.IsSet())
}

func TestAccessor_Bool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    bool
		wantErr bool
	}{
		{"yes", "yes", true, false},
		{"mixed case", "YeS", true, false},
		{"padded one", " 1 ", true, false},
		{"trailing tab", "YES\t", true, false},
		{"padded no", "  NO  ", false, false},
		{"false", "false", false, false},
		{"empty is false", "", false, false},
		{"blank is false", " ", false, false},
		{"invalid", "nope", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(map[string]string{"TEST_BOOL": tt.value})
			got, err := a.Bool("TEST_BOOL")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBool)
				var verr *VariableError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "TEST_BOOL", verr.Name)
				assert.Equal(t, tt.value, verr.Value)
				return
			}
			require.NoError(t, err)
			v, ok := got.Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAccessor_BoolDefaults(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)

	tests := []struct {
		name    string
		def     any
		want    bool
		wantErr bool
	}{
		{"true", true, true, false},
		{"false", false, false, false},
		{"positive int", 123, true, false},
		{"zero", 0, false, false},
		{"negative int", -4, false, false},
		{"uint", uint8(1), true, false},
		{"string", "on", true, false},
		{"empty string", "", false, false},
		{"float is not an integer", 1.5, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := a.Bool("DOES_NOT_EXIST", Default(tt.def))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBool)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Or(!tt.want))
		})
	}

	got, err := a.Bool("DOES_NOT_EXIST_BOOL", AllowNone())
	require.NoError(t, err)
	assert.False(t, got.IsSet())
}

func TestAccessor_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"plain", "1234567", 1234567, false},
		{"padded", "  1234567  ", 1234567, false},
		{"leading zeros are decimal", "0012", 12, false},
		{"signed", "-42", -42, false},
		{"plus sign", "+7", 7, false},
		{"float", "1.5", 0, true},
		{"hex", "0x1F", 0, true},
		{"word", "many", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(map[string]string{"TEST_INT": tt.value})
			got, err := a.Int("TEST_INT")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidNumber)
				var numErr *strconv.NumError
				assert.ErrorAs(t, err, &numErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Or(-1))
		})
	}
}

func TestAccessor_IntDefaults(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)

	tests := []struct {
		name    string
		def     any
		want    int
		wantErr bool
	}{
		{"int", 8080, 8080, false},
		{"int64", int64(9), 9, false},
		{"string", " 123 ", 123, false},
		{"float truncates", 3.9, 3, false},
		{"bool", true, 1, false},
		{"slice", []string{"1"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := a.Int("DOES_NOT_EXIST", Default(tt.def))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Or(-1))
		})
	}
}

func TestAccessor_Float(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{"trailing zero", "123.45670", 123.4567, false},
		{"padded", "  12345.67  ", 12345.67, false},
		{"leading zeros", "  0012345.67  ", 12345.67, false},
		{"integer", "3", 3, false},
		{"exponent", "1e3", 1000, false},
		{"invalid", "1.2.3", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(map[string]string{"TEST_FLOAT": tt.value})
			got, err := a.Float("TEST_FLOAT")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidNumber)
				var numErr *strconv.NumError
				assert.ErrorAs(t, err, &numErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Or(-1), 1e-9)
		})
	}

	a := newTestAccessor(nil)
	got, err := a.Float("DOES_NOT_EXIST", Default(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.Or(0), 1e-9)
}

func TestAccessor_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		opts    []ReadOption
		want    []string
		wantErr bool
	}{
		{"three items", "item1,item2,item3", nil, []string{"item1", "item2", "item3"}, false},
		{"two items", "item1,item2", nil, []string{"item1", "item2"}, false},
		{"single item", "item1", nil, []string{"item1"}, false},
		{"trailing separator", "item1,", nil, []string{"item1"}, false},
		{"surrounding separators", ",item1,", nil, []string{"item1"}, false},
		{"spaces", "  item1 , item2 , item3  ", nil, []string{"item1", "item2", "item3"}, false},
		{"blank elements", " , item1 , item2 , item3 , , ,, ", nil, []string{"item1", "item2", "item3"}, false},
		{"custom separator", "item1;item2;item3", []ReadOption{Separator(";")}, []string{"item1", "item2", "item3"}, false},
		{"custom separator keeps commas", "a,b;c", []ReadOption{Separator(";")}, []string{"a,b", "c"}, false},
		{"empty separator keeps default", "a,b", []ReadOption{Separator("")}, []string{"a", "b"}, false},
		{"empty", "", nil, nil, true},
		{"only separators", " , ,", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(map[string]string{"TEST_LIST": tt.value})
			got, err := a.List("TEST_LIST", tt.opts...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidList)
				assert.NotErrorIs(t, err, ErrMissing)
				return
			}
			require.NoError(t, err)
			v, ok := got.Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAccessor_ListDefaults(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)

	tests := []struct {
		name string
		def  any
		want []string
	}{
		{"one item slice", []string{"item1"}, []string{"item1"}},
		{"slice", []string{"item1", "item2"}, []string{"item1", "item2"}},
		{"string", "item1,item2", []string{"item1", "item2"}},
		{"tuple", Tuple{"a", "b"}, []string{"a", "b"}},
		{"int slice", []int{1, 2}, []string{"1", "2"}},
		{"scalar is wrapped", 42, []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := a.List("DOES_NOT_EXIST", Default(tt.def))
			require.NoError(t, err)
			v, _ := got.Value()
			assert.Equal(t, tt.want, v)
		})
	}

	got, err := a.List("DOES_NOT_EXIST", AllowNone())
	require.NoError(t, err)
	assert.False(t, got.IsSet())
}

func TestAccessor_Tuple(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(map[string]string{
		"TEST_TUPLE":       "a, b ,c",
		"TEST_TUPLE_EMPTY": ",",
		"TEST_TUPLE_PIPE":  "x|y",
	})

	got, err := a.Tuple("TEST_TUPLE")
	require.NoError(t, err)
	assert.Equal(t, Tuple{"a", "b", "c"}, got.Or(nil))

	got, err = a.Tuple("TEST_TUPLE_PIPE", Separator("|"))
	require.NoError(t, err)
	assert.Equal(t, Tuple{"x", "y"}, got.Or(nil))

	_, err = a.Tuple("TEST_TUPLE_EMPTY")
	assert.ErrorIs(t, err, ErrInvalidList)

	got, err = a.Tuple("DOES_NOT_EXIST", Default(Tuple{"d"}))
	require.NoError(t, err)
	assert.Equal(t, Tuple{"d"}, got.Or(nil))

	got, err = a.Tuple("DOES_NOT_EXIST", Default([]string{"l"}))
	require.NoError(t, err)
	assert.Equal(t, Tuple{"l"}, got.Or(nil))

	got, err = a.Tuple("DOES_NOT_EXIST", Default(true))
	require.NoError(t, err)
	assert.Equal(t, Tuple{"true"}, got.Or(nil))
}

func TestNestedDefaults(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)

	s, err := a.Str("TEST_NOPE_STR", Default("123"))
	require.NoError(t, err)
	n, err := a.Int("TEST_NOPE_INT", Default(s))
	require.NoError(t, err)
	assert.Equal(t, 123, n.Or(0))

	n, err = a.Int("TEST_NOPE_INT", Default(123))
	require.NoError(t, err)
	s, err = a.Str("TEST_NOPE_STR", Default(n))
	require.NoError(t, err)
	assert.Equal(t, "123", s.Or(""))

	b, err := a.Bool("TEST_NOPE_BOOL", Default(n))
	require.NoError(t, err)
	assert.True(t, b.Or(false))

	zero, err := a.Int("TEST_NOPE_INT", Default(0))
	require.NoError(t, err)
	b, err = a.Bool("TEST_NOPE_BOOL", Default(zero))
	require.NoError(t, err)
	assert.False(t, b.Or(true))

	s, err = a.Str("TEST_NOPE_STR", Default("false"))
	require.NoError(t, err)
	b, err = a.Bool("TEST_NOPE_BOOL", Default(s))
	require.NoError(t, err)
	assert.False(t, b.Or(true))

	s, err = a.Str("TEST_NOPE_STR", Default(""))
	require.NoError(t, err)
	b, err = a.Bool("TEST_NOPE_BOOL", Default(s))
	require.NoError(t, err)
	assert.False(t, b.Or(true))

	none, err := a.Str("TEST_NOPE_STR", AllowNone())
	require.NoError(t, err)
	_, err = a.Bool("TEST_NOPE_BOOL", Default(none))
	assert.ErrorIs(t, err, ErrMissing)
}

func TestStrAfterWrite(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)
	for _, v := range []string{"value", "  value  ", "\tmulti word\n", ""} {
		require.NoError(t, a.Write("PROPERTY", v))
		got, err := a.Str("PROPERTY")
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(v), got.Or("unexpected"))
	}
}
