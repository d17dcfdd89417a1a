package maze

import (
	"encoding/json"
	"fmt"
)

// Cell is a grid coordinate. On the wire it is the two-element array
// [row,col], which is what trace consumers index into directly.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// MarshalJSON encodes the cell as [row,col].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes the [row,col] wire form.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("cell must be a [row,col] pair: %w", err)
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}
