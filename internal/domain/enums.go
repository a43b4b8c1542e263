package domain

// MoveViolation names the precondition a rejected move broke.
type MoveViolation int

const (
	ViolationNone             MoveViolation = iota // no violation
	ViolationSourceRange                           // source stool index out of range
	ViolationDestinationRange                      // destination stool index out of range
	ViolationSameStool                             // source == destination
	ViolationEmptySource                           // nothing to move
	ViolationLargerOnSmaller                       // source top is bigger than destination top
)

func (v MoveViolation) String() string {
	switch v {
	case ViolationSourceRange:
		return "source stool out of range"
	case ViolationDestinationRange:
		return "destination stool out of range"
	case ViolationSameStool:
		return "source and destination are the same stool"
	case ViolationEmptySource:
		return "source stool is empty"
	case ViolationLargerOnSmaller:
		return "larger disc cannot rest on a smaller one"
	default:
		return "none"
	}
}
