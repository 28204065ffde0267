package cut

import "fmt"

// BuildError reports a fatal defect discovered while accumulating a cut —
// currently only a bucket-index collision, which indicates a data bug
// rather than a recoverable parse error (spec §7 "IndexCollision").
type BuildError struct {
	Msg string
}

func (e *BuildError) Error() string { return e.Msg }

func newIndexCollision(a, b float32, bucket int) *BuildError {
	return &BuildError{Msg: fmt.Sprintf("azimuth %.3f collides with existing %.3f at bucket %d", a, b, bucket)}
}
