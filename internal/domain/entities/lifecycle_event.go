package entities

import "time"

// DriverPair is the duplicated primary/secondary driver and equipment
// record attached to lifecycle events and to the current snapshot.
// Empty string means "not provided"; the projector never lets an absent
// field erase a previously known value.
type DriverPair struct {
	DriverName          string `json:"driver_name,omitempty"`
	DriverPhone         string `json:"driver_phone,omitempty"`
	DriverEmail         string `json:"driver_email,omitempty"`
	DriverLicenseNumber string `json:"driver_license_number,omitempty"`
	DriverLicenseState  string `json:"driver_license_state,omitempty"`
	TruckNumber         string `json:"truck_number,omitempty"`
	TrailerNumber       string `json:"trailer_number,omitempty"`

	SecondDriverName          string `json:"second_driver_name,omitempty"`
	SecondDriverPhone         string `json:"second_driver_phone,omitempty"`
	SecondDriverEmail         string `json:"second_driver_email,omitempty"`
	SecondDriverLicenseNumber string `json:"second_driver_license_number,omitempty"`
	SecondDriverLicenseState  string `json:"second_driver_license_state,omitempty"`
	SecondTruckNumber         string `json:"second_truck_number,omitempty"`
	SecondTrailerNumber       string `json:"second_trailer_number,omitempty"`
}

// Empty reports whether no driver or equipment field was provided.
func (d DriverPair) Empty() bool {
	return d == DriverPair{}
}

// PhaseTimes carries the transition-specific timestamps. Each field is
// only meaningful for its matching status: CheckInTime for
// checked_in_origin, PickupTime for picked_up, DepartureTime for
// departed_origin, CheckInDeliveryTime for checked_in_destination and
// DeliveryTime for delivered.
type PhaseTimes struct {
	CheckInTime         *time.Time `json:"check_in_time,omitempty"`
	PickupTime          *time.Time `json:"pickup_time,omitempty"`
	DepartureTime       *time.Time `json:"departure_time,omitempty"`
	CheckInDeliveryTime *time.Time `json:"check_in_delivery_time,omitempty"`
	DeliveryTime        *time.Time `json:"delivery_time,omitempty"`
}

// EventData is the audit blob stored alongside every event.
type EventData struct {
	PreviousStatus string    `json:"previous_status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LifecycleEvent is one immutable, timestamped fact about a load's
// fulfillment progress.
//
// Storage model (DynamoDB):
//   - PK: bid_id (bid number)
//   - SK: ts (RFC3339Nano timestamp)
//
// Once written, EventType, Timestamp and BidID never change; the table
// is append-only and no update or delete path exists in this core.
type LifecycleEvent struct {
	ID        string    `json:"id"`
	BidID     string    `json:"bid_id"`
	EventType BidStatus `json:"event_type"`
	EventData EventData `json:"event_data"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
	Location  string    `json:"location,omitempty"`
	Documents []string  `json:"documents,omitempty"`
	Photos    []string  `json:"photos,omitempty"`

	DriverPair
	PhaseTimes
}
