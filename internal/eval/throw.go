package eval

import "github.com/MysticalUnicat/fern/internal/box"

// Thrown is the user-level exception carrier; see box.Thrown.
type Thrown = box.Thrown

// Throw raises value as a user-level exception.
func Throw(value box.Box) {
	box.Throw(value)
}
