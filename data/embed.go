// Package data embeds the currency tables of the bundled languages.
package data

import _ "embed"

//go:embed currency/hu.yaml
var CurrencyHU []byte

//go:embed currency/de.yaml
var CurrencyDE []byte
