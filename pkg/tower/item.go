package tower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/cupstack/pkg/errors"
)

// Kind names the two things that can sit in a tower.
type Kind string

const (
	KindCup Kind = "cup"
	KindLid Kind = "lid"
)

// Item references a cup or a lid by number. It is the unit of
// [Tower.StackingItems] and the operand type of [Tower.Swap].
type Item struct {
	Kind Kind `json:"kind"`
	ID   int  `json:"id"`
}

// CupRef returns a reference to cup id.
func CupRef(id int) Item { return Item{Kind: KindCup, ID: id} }

// LidRef returns a reference to the lid of cup id.
func LidRef(id int) Item { return Item{Kind: KindLid, ID: id} }

// String formats the item as "cup 3".
func (i Item) String() string { return fmt.Sprintf("%s %d", i.Kind, i.ID) }

// Pair returns the item as a {kind, id} string pair.
func (i Item) Pair() [2]string { return [2]string{string(i.Kind), strconv.Itoa(i.ID)} }

// ParseItem builds an item from a kind word and a number. The kind is
// lowercased but not checked, so that operations can reject unknown kinds
// with their own error code.
func ParseItem(kind, id string) (Item, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Item{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s number %q", kind, id)
	}
	return Item{Kind: Kind(strings.ToLower(strings.TrimSpace(kind))), ID: n}, nil
}

// FormatItems renders items one per line, e.g. "cup 3\nlid 3\n".
func FormatItems(items []Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.String())
		b.WriteByte('\n')
	}
	return b.String()
}
