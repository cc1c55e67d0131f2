// Package translation embeds the message files shipped with the binary.
package translation

import "embed"

//go:embed *.toml
var Files embed.FS
