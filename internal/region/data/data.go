// Package data embeds the national administrative region dataset in the split
// layout read by source.FSSource. The province table is complete (38
// provinces); regency and district detail covers DKI Jakarta (31),
// DI Yogyakarta (34) and Bali (51). Point NIK_REGION_DATA_DIR or
// NIK_REGION_DATASET at the full dataset for nationwide detail.
package data

import "embed"

//go:embed provinces.json regencies districts
var FS embed.FS
