package carrier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected Carrier
	}{
		{name: "GC prefix", code: "GC0000000000000001", expected: Shein},
		{name: "AJ prefix", code: "AJ1234567890123456", expected: Shein},
		{name: "surrounding whitespace is trimmed", code: "  GC0000000000000002\t", expected: Shein},
		{name: "BR prefix alphanumeric", code: "BR1A2B3C4D5E6F7", expected: Shopee},
		{name: "BR prefix digits only", code: "BR1234567890123", expected: Shopee},
		{name: "44 prefix", code: "44123456789", expected: MercadoLivre},
		{name: "fifteen digits is an invoice", code: "123456789012345", expected: Invoice},
		{name: "long invoice", code: "35240612345678000190550010000012341000012345", expected: Invoice},
		{name: "long digits starting with 44 is an invoice", code: "441234567890123", expected: Invoice},
		{name: "GC with seventeen digits", code: "GC00000000000000001", expected: None},
		{name: "GC with letters", code: "GC00000000000000A1", expected: None},
		{name: "BR with underscore passes shape but no rule", code: "BR123456789012_", expected: None},
		{name: "lower case prefix", code: "gc0000000000000001", expected: None},
		{name: "short digits", code: "12345678901234", expected: None},
		{name: "empty", code: "", expected: None},
		{name: "garbage", code: "hello world", expected: None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Classify(tc.code)
			assert.Equal(t, tc.expected, m.Carrier)
			assert.Equal(t, strings.TrimSpace(tc.code), m.Code)
			assert.Equal(t, tc.expected != None, m.Recognized())
			assert.Equal(t, tc.expected == Invoice, m.IsInvoice())
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Shopee, Classify("BRABCDEFGHIJKLM").Carrier)
	}
}

func TestValidShape(t *testing.T) {
	assert.True(t, ValidShape("GC0000000000000001"))
	assert.True(t, ValidShape(" 44123456789 "))
	assert.True(t, ValidShape("BR123456789012_"))
	assert.False(t, ValidShape("GC00000000000000001"))
	assert.False(t, ValidShape("4412345678"))
	assert.False(t, ValidShape("XX0000000000000001"))
}

func TestRegistry_Parse(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	t.Run("by name ignoring case", func(t *testing.T) {
		c, err := reg.Parse("mercado livre")
		require.NoError(t, err)
		assert.Equal(t, MercadoLivre, c)
	})

	t.Run("by position", func(t *testing.T) {
		c, err := reg.Parse("2")
		require.NoError(t, err)
		assert.Equal(t, Shopee, c)
	})

	t.Run("position out of range", func(t *testing.T) {
		_, err := reg.Parse("4")
		assert.ErrorIs(t, err, ErrUnknownCarrier)
	})

	t.Run("invoice is never selectable", func(t *testing.T) {
		_, err := reg.Parse("Nota Fiscal")
		assert.ErrorIs(t, err, ErrUnknownCarrier)
	})
}

func TestNewRegistry_Subset(t *testing.T) {
	reg, err := NewRegistry([]string{"shopee", "SHEIN"})
	require.NoError(t, err)

	assert.Equal(t, []Carrier{Shopee, Shein}, reg.Carriers())
	assert.True(t, reg.Contains(Shein))
	assert.False(t, reg.Contains(MercadoLivre))

	_, err = NewRegistry([]string{"DHL"})
	assert.ErrorIs(t, err, ErrUnknownCarrier)
}
