// Package radio implements the vk command group: lookups of Australian
// amateur radio callsigns against the vklookup HTTP API.
package radio
