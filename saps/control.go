package saps

// BrewSubscriberAction is the action a Control-SAP MmSubscriberUpdate
// primitive requests of the receiving entity's subscriber table.
type BrewSubscriberAction int

const (
	BrewRegister BrewSubscriberAction = iota
	BrewAffiliate
	BrewDeregister
	BrewDetach
)

func (a BrewSubscriberAction) String() string {
	switch a {
	case BrewRegister:
		return "Register"
	case BrewAffiliate:
		return "Affiliate"
	case BrewDeregister:
		return "Deregister"
	case BrewDetach:
		return "Detach"
	default:
		return "UnknownAction"
	}
}

// MmSubscriberUpdate is a management primitive arriving on the Control
// SAP from the brew/management source external to the core, informing an
// entity's subscriber table of a registration, affiliation, or removal.
type MmSubscriberUpdate struct {
	Issi   uint32
	Groups []uint32
	Action BrewSubscriberAction
}

func (MmSubscriberUpdate) isSapBody() {}
