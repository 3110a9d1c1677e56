package de

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/numwords/numwords"
)

func TestToWords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "null"},
		{"one", 1, "eins"},
		{"two", 2, "zwei"},
		{"ten", 10, "zehn"},
		{"eleven", 11, "elf"},
		{"twelve", 12, "zwölf"},
		{"sixteen", 16, "sechzehn"},
		{"twenty", 20, "zwanzig"},
		{"twenty-one", 21, "einundzwanzig"},
		{"thirty-seven", 37, "siebenunddreißig"},
		{"ninety-nine", 99, "neunundneunzig"},
		{"hundred", 100, "einhundert"},
		{"hundred one", 101, "einhunderteins"},
		{"hundred eleven", 111, "einhundertelf"},
		{"thousand", 1000, "eintausend"},
		{"thousand one", 1001, "eintausendeins"},
		{"two thousand one", 2001, "zweitausendeins"},
		{"hundred one thousand", 101000, "einhunderteintausend"},
		{"full below million", 999999, "neunhundertneunundneunzigtausendneunhundertneunundneunzig"},
		{"million", 1000000, "eine Million"},
		{"million one", 1000001, "eine Million eins"},
		{"million thousand", 1001000, "eine Million eintausend"},
		{"two million", 2000000, "zwei Millionen"},
		{"twenty-one million", 21000000, "einundzwanzig Millionen"},
		{"milliard", 1000000000, "eine Milliarde"},
		{"four milliards", 4000000000, "vier Milliarden"},
		{"negative one", -1, "minus eins"},
		{"negative", -2500, "minus zweitausendfünfhundert"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := numwords.ToWords(Language(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStructure checks that words below one million form a single
// compound and that each noun scale is written apart.
func TestStructure(t *testing.T) {
	t.Parallel()

	lang := Language()
	for n := int64(0); n < 1_000_000; n += 997 {
		got, err := numwords.ToWords(lang, n)
		require.NoError(t, err, "ToWords(%d)", n)
		assert.NotContains(t, got, " ", "ToWords(%d) = %q", n, got)
	}

	got, err := numwords.ToWords(lang, 3_004_005_006)
	require.NoError(t, err)
	assert.Equal(t, "drei Milliarden vier Millionen fünftausendsechs", got)
}

func TestLexicon(t *testing.T) {
	t.Parallel()

	require.NoError(t, lexicon.Validate())
	assert.Equal(t, 66, lexicon.MaxDigits())
}

func TestGroupWordsAttributive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, exponent int
		mode            numwords.Mode
		want            string
	}{
		{1, 0, numwords.Standalone, "eins"},
		{1, 0, numwords.Attributive, "ein"},
		{101, 0, numwords.Attributive, "einhundertein"},
		{1, 3, numwords.Standalone, "eintausend"},
		{1, 6, numwords.Standalone, "eine Million"},
		{1, 6, numwords.Attributive, "eine Million"},
		{21, 6, numwords.Standalone, "einundzwanzig Millionen"},
	}

	for _, tt := range cases {
		got, ok := numwords.RenderGroup(Language(), tt.value, tt.exponent, tt.mode)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "RenderGroup(%d, %d)", tt.value, tt.exponent)
	}
}

func TestToCurrencyWords(t *testing.T) {
	t.Parallel()

	lang := Language()
	cases := []struct {
		name  string
		code  string
		major int64
		want  string
	}{
		{"one euro", "EUR", 1, "ein Euro"},
		{"two euro", "EUR", 2, "zwei Euro"},
		{"hundred one", "EUR", 101, "einhundertein Euro"},
		{"million", "EUR", 1_000_000, "eine Million Euro"},
		{"adjective plural", "CZK", 2, "zwei Tschechische Kronen"},
		{"negative", "USD", -3, "minus drei Dollar"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := numwords.ToCurrencyWords(lang, tt.code, tt.major)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCurrencyWordsDecimal(t *testing.T) {
	t.Parallel()

	lang := Language()
	cases := []struct {
		amount string
		code   string
		want   string
	}{
		{"2.50", "EUR", "zwei Euro fünfzig Cent"},
		{"0.01", "EUR", "null Euro ein Cent"},
		{"-0.50", "EUR", "minus null Euro fünfzig Cent"},
		{"1.01", "GBP", "ein Pfund ein Penny"},
		{"2.02", "GBP", "zwei Pfund zwei Pence"},
		{"300", "JPY", "dreihundert Yen"},
	}

	for _, tt := range cases {
		got, err := numwords.ToCurrencyWordsDecimal(lang, tt.code, decimal.RequireFromString(tt.amount))
		require.NoError(t, err, "%s %s", tt.amount, tt.code)
		assert.Equal(t, tt.want, got, "%s %s", tt.amount, tt.code)
	}
}

func TestUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	_, err := numwords.ToCurrencyWords(Language(), "ALL", 1)
	require.ErrorIs(t, err, numwords.ErrUnsupportedCurrency)
	assert.Equal(t, `numwords: currency "ALL" is not available for "German" language`, err.Error())
}

func TestCurrencyTable(t *testing.T) {
	t.Parallel()

	table := Language().Currencies()
	require.NotNil(t, table)
	assert.Len(t, table.Codes(), 18)

	for _, code := range table.Codes() {
		e, ok := table.Lookup(code)
		require.True(t, ok, code)
		assert.Len(t, e.Major, 2, code)
		assert.Len(t, e.Minor, 2, code)
	}
}

func ExampleLanguage() {
	words, _ := numwords.ToWords(Language(), 1_001_021)
	fmt.Println(words)
	amount, _ := numwords.ToCurrencyWordsMinor(Language(), "EUR", 1, 50)
	fmt.Println(amount)
	// Output:
	// eine Million eintausendeinundzwanzig
	// ein Euro fünfzig Cent
}

func BenchmarkToWords(b *testing.B) {
	lang := Language()
	for b.Loop() {
		numwords.ToWords(lang, 2300095)
	}
}
