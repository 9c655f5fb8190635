package constant

// AssignmentMode selects the side effects of an assignment write.
type AssignmentMode string

const (
	ModeAdd        AssignmentMode = "add"
	ModeMove       AssignmentMode = "move"
	ModeAddAndMix  AssignmentMode = "add_and_mix"
	ModeMoveAndMix AssignmentMode = "move_and_mix"
)

func (m AssignmentMode) Valid() bool {
	switch m {
	case ModeAdd, ModeMove, ModeAddAndMix, ModeMoveAndMix:
		return true
	}
	return false
}

// Moves reports whether the mode removes the product's prior assignments.
func (m AssignmentMode) Moves() bool {
	return m == ModeMove || m == ModeMoveAndMix
}

// Mixes reports whether the mode flags the target location as mixed.
func (m AssignmentMode) Mixes() bool {
	return m == ModeAddAndMix || m == ModeMoveAndMix
}

type LocationType string

const (
	LocationTypeWarehouse LocationType = "warehouse"
	LocationTypeZone      LocationType = "zone"
	LocationTypeRack      LocationType = "rack"
	LocationTypeLevel     LocationType = "level"
	LocationTypeBin       LocationType = "bin"
)

// LocationPathSeparator joins location names from root to node.
const LocationPathSeparator = " > "

type AssignmentEvent string

const (
	AssignmentEventCreated AssignmentEvent = "assignment.created"
	AssignmentEventMoved   AssignmentEvent = "assignment.moved"
	AssignmentEventUpdated AssignmentEvent = "assignment.updated"
	AssignmentEventDeleted AssignmentEvent = "assignment.deleted"
	AssignmentEventCleanup AssignmentEvent = "assignment.cleanup"
)
