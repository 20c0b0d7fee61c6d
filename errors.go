package tui

import "fmt"

// DuplicateTagError reports two leaves in one frame sharing a tag.
// It indicates a defect in the declarative tree: the frame is never
// rendered and the error is not recoverable locally.
type DuplicateTagError struct {
	Tag Tag
}

func (e DuplicateTagError) Error() string {
	return fmt.Sprintf("tui: duplicate tag %q in view tree", string(e.Tag))
}

// TooManyChildrenError reports a stack exceeding MaxChildren.
type TooManyChildrenError struct {
	Count int
}

func (e TooManyChildrenError) Error() string {
	return fmt.Sprintf("tui: stack has %d children, maximum is %d", e.Count, MaxChildren)
}
