package board

import "fmt"

// Status identifies the lane a project occupies.
type Status int

const (
	StatusActive Status = iota
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus maps a lane name back to its Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return StatusActive, fmt.Errorf("unknown status %q", name)
	}
}

// Project is one unit of work on the board. ID is assigned by the store at
// creation and never changes; Status is the only field the store mutates
// afterwards.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}
