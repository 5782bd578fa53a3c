package game

// Command is a discrete input action delivered to the simulation once per
// key event. Commands that do not apply to the current state are ignored.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	SoftDrop
	HardDrop
	Hold
	Pause
	Confirm
	Cancel
	Quit
)

var commandNames = [...]string{
	"MoveLeft", "MoveRight", "RotateCW", "SoftDrop", "HardDrop",
	"Hold", "Pause", "Confirm", "Cancel", "Quit",
}

func (c Command) String() string { return commandNames[c] }
