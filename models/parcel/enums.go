package parcel

// ParcelStatus represents the lifecycle state of a received parcel
type ParcelStatus string

const (
	ParcelStatusReceived  ParcelStatus = "received"
	ParcelStatusStored    ParcelStatus = "stored"
	ParcelStatusDelivered ParcelStatus = "delivered"
)

func (ps ParcelStatus) String() string {
	return string(ps)
}

func (ps ParcelStatus) IsValid() bool {
	switch ps {
	case ParcelStatusReceived, ParcelStatusStored, ParcelStatusDelivered:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the parcel has left the premises
func (ps ParcelStatus) IsCompleted() bool {
	return ps == ParcelStatusDelivered
}

// CanTransitionTo reports whether the status may move to the given next status
func (ps ParcelStatus) CanTransitionTo(next ParcelStatus) bool {
	switch ps {
	case ParcelStatusReceived:
		return next == ParcelStatusStored || next == ParcelStatusDelivered
	case ParcelStatusStored:
		return next == ParcelStatusDelivered
	default:
		return false
	}
}

// GetAllParcelStatuses returns all valid parcel statuses
func GetAllParcelStatuses() []ParcelStatus {
	return []ParcelStatus{
		ParcelStatusReceived,
		ParcelStatusStored,
		ParcelStatusDelivered,
	}
}
