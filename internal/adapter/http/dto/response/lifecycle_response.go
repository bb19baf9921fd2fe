package response

import (
	"encoding/json"
	"time"

	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase"
)

// TransitionResponse confirms a committed lifecycle transition.
type TransitionResponse struct {
	EventID        string `json:"event_id"`
	NewStatus      string `json:"new_status"`
	PreviousStatus string `json:"previous_status"`
}

func FromTransitionResult(res usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{
		EventID:        res.EventID,
		NewStatus:      string(res.NewStatus),
		PreviousStatus: string(res.PreviousStatus),
	}
}

type EventDataResponse struct {
	PreviousStatus string    `json:"previous_status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LifecycleEventResponse struct {
	ID        string            `json:"id"`
	BidID     string            `json:"bid_id"`
	EventType string            `json:"event_type"`
	EventData EventDataResponse `json:"event_data"`
	Timestamp time.Time         `json:"timestamp"`
	Notes     string            `json:"notes,omitempty"`
	Location  string            `json:"location,omitempty"`
	Documents []string          `json:"documents,omitempty"`
	Photos    []string          `json:"photos,omitempty"`

	entities.DriverPair

	CheckInTime         *time.Time `json:"check_in_time,omitempty"`
	PickupTime          *time.Time `json:"pickup_time,omitempty"`
	DepartureTime       *time.Time `json:"departure_time,omitempty"`
	CheckInDeliveryTime *time.Time `json:"check_in_delivery_time,omitempty"`
	DeliveryTime        *time.Time `json:"delivery_time,omitempty"`
}

// BidDetailsResponse is the denormalized award/route/snapshot summary.
// It deliberately has no field for the award's internal margin, so the
// figure cannot leak regardless of caller role.
type BidDetailsResponse struct {
	BidNumber         string          `json:"bid_number"`
	WinnerAmountCents int64           `json:"winner_amount_cents"`
	AwardedAt         time.Time       `json:"awarded_at"`
	DistanceMiles     float64         `json:"distance_miles,omitempty"`
	PickupTimestamp   *time.Time      `json:"pickup_timestamp,omitempty"`
	DeliveryTimestamp *time.Time      `json:"delivery_timestamp,omitempty"`
	Stops             json.RawMessage `json:"stops,omitempty"`
	Tag               string          `json:"tag,omitempty"`
	SourceChannel     string          `json:"source_channel,omitempty"`

	DriverName     string `json:"driver_name,omitempty"`
	DriverPhone    string `json:"driver_phone,omitempty"`
	TruckNumber    string `json:"truck_number,omitempty"`
	TrailerNumber  string `json:"trailer_number,omitempty"`
	LifecycleNotes string `json:"lifecycle_notes,omitempty"`
}

type LifecycleViewResponse struct {
	Events        []LifecycleEventResponse `json:"events"`
	CurrentStatus string                   `json:"current_status"`
	BidDetails    *BidDetailsResponse      `json:"bid_details"`
}

func FromLifecycleView(v usecase.LifecycleView) LifecycleViewResponse {
	events := make([]LifecycleEventResponse, 0, len(v.Events))
	for _, e := range v.Events {
		events = append(events, fromLifecycleEvent(e))
	}

	resp := LifecycleViewResponse{
		Events:        events,
		CurrentStatus: string(v.CurrentStatus),
	}
	if v.Details != nil {
		resp.BidDetails = fromBidDetails(*v.Details)
	}
	return resp
}

func fromLifecycleEvent(e entities.LifecycleEvent) LifecycleEventResponse {
	return LifecycleEventResponse{
		ID:        e.ID,
		BidID:     e.BidID,
		EventType: string(e.EventType),
		EventData: EventDataResponse{
			PreviousStatus: e.EventData.PreviousStatus,
			UpdatedAt:      e.EventData.UpdatedAt,
		},
		Timestamp:  e.Timestamp,
		Notes:      e.Notes,
		Location:   e.Location,
		Documents:  e.Documents,
		Photos:     e.Photos,
		DriverPair: e.DriverPair,

		CheckInTime:         e.CheckInTime,
		PickupTime:          e.PickupTime,
		DepartureTime:       e.DepartureTime,
		CheckInDeliveryTime: e.CheckInDeliveryTime,
		DeliveryTime:        e.DeliveryTime,
	}
}

func fromBidDetails(d usecase.BidDetails) *BidDetailsResponse {
	resp := &BidDetailsResponse{
		BidNumber:         d.Award.BidNumber,
		WinnerAmountCents: d.Award.WinnerAmountCents,
		AwardedAt:         d.Award.AwardedAt,
		DistanceMiles:     d.Award.DistanceMiles,
		PickupTimestamp:   d.Award.PickupTimestamp,
		DeliveryTimestamp: d.Award.DeliveryTimestamp,
		Stops:             d.Award.Stops,
		Tag:               d.Award.Tag,
		SourceChannel:     d.Award.SourceChannel,
	}
	if d.Snapshot != nil {
		resp.DriverName = d.Snapshot.DriverName
		resp.DriverPhone = d.Snapshot.DriverPhone
		resp.TruckNumber = d.Snapshot.TruckNumber
		resp.TrailerNumber = d.Snapshot.TrailerNumber
		resp.LifecycleNotes = d.Snapshot.LifecycleNotes
	}
	return resp
}
