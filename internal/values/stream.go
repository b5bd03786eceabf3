package values

// Stream is a reserved heap kind: the tag exists so a Box can carry
// one, but no primitive in this core produces or consumes one yet.
type Stream struct{}
