package entity

const (
	HumanKind    = "human"
	ComputerKind = "computer"
)

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Kind string `json:"kind"`
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark, Kind: HumanKind}
}

func NewComputerPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark, Kind: ComputerKind}
}

func (that *Player) IsComputer() bool {
	return that.Kind == ComputerKind
}
