package field

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/parkedfield/internal/grapheme"
)

func splitClusters(text string) []string { return graphemeutil.Split(text) }

// cellWidth returns the terminal cell width of a grapheme cluster.
func cellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

func cellWidths(clusters []string) []int {
	out := make([]int, len(clusters))
	for i, c := range clusters {
		out[i] = cellWidth(c)
	}
	return out
}

func sumRange(widths []int, start, end int) int {
	n := 0
	for i := start; i < end && i < len(widths); i++ {
		n += widths[i]
	}
	return n
}
