package vm

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/eval"
	"github.com/MysticalUnicat/fern/internal/values"
)

// messageBox builds the character-array Box primitives throw as their
// descriptive message.
func messageBox(msg string) box.Box {
	runes := []rune(msg)
	cells, _ := data.Init(data.FormatCharacter, uint32(len(runes)))
	for i, r := range runes {
		cells.SetCell(uint32(i), box.PackCharacter(r))
	}
	return values.PackNewArray(values.MakeArrayFromCells(cells, box.PackCharacter(' ')))
}

// throwMessage raises msg as a user-level exception, for diagnostics
// that are catchable user errors rather than internal invariant
// violations (uninitialized-variable reads, "Variable modified before
// definition", "Target and value shapes don't match", "Left argument
// required").
func throwMessage(msg string) {
	eval.Throw(messageBox(msg))
}
