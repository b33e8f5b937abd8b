package openday

type EventType string

const (
	TypeCampusTour EventType = "campus_tour"
	TypeOpenDoors  EventType = "open_doors"
	TypeWebinar    EventType = "webinar"
)

func (t EventType) String() string {
	return string(t)
}

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCanceled  RegistrationStatus = "canceled"
)

func (s RegistrationStatus) String() string {
	return string(s)
}
