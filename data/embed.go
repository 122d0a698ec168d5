// Package data embeds the override tables and synonym seed database loaded
// once at process start by transfero.
package data

import _ "embed"

//go:embed adj_to_adv.json
var AdjToAdv []byte

//go:embed synonyms.txt
var Synonyms []byte
