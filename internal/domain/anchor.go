package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// MenuAnchor is the bookmark name reserved for the navigation menu.
const MenuAnchor = "menu"

const anchorSpace = 1_000_000_000

// AnchorFor derives the bookmark anchor for an input file. It is a pure
// function of the path: the menu-building pass and the body-assembly
// pass call it independently and must land on the same value. The
// "doc_" prefix keeps document anchors disjoint from MenuAnchor.
// Uniqueness across paths is probabilistic (nine decimal digits of
// hash), not guaranteed.
func AnchorFor(path string) string {
	return fmt.Sprintf("doc_%d", xxhash.Sum64String(path)%anchorSpace)
}
