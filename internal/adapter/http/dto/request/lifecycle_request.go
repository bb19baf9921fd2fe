package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"nova_freight/internal/domain/entities"
)

var (
	ErrUnknownStatusValue = errors.New("unknown status value")
	ErrInvalidBidNumber   = errors.New("invalid bid number format")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidLicense     = errors.New("invalid driver license field")
	ErrMisplacedPhaseTime = errors.New("timestamp does not belong to the requested status")
)

var (
	bidNumberRx    = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)
	phoneRx        = regexp.MustCompile(`^\+?[0-9().\s-]{7,20}$`)
	licenseStateRx = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// ValidateBidNumber checks the path parameter before any store access.
func ValidateBidNumber(bidNumber string) error {
	if !bidNumberRx.MatchString(strings.TrimSpace(bidNumber)) {
		return ErrInvalidBidNumber
	}
	return nil
}

// LifecycleTransitionRequest is the POST lifecycle payload. All fields
// except status are optional; an absent field never erases a previously
// stored value.
type LifecycleTransitionRequest struct {
	Status    string   `json:"status" binding:"required"`
	Notes     string   `json:"notes"`
	Location  string   `json:"location"`
	Documents []string `json:"documents"`
	Photos    []string `json:"photos"`

	DriverName          string `json:"driver_name"`
	DriverPhone         string `json:"driver_phone"`
	DriverEmail         string `json:"driver_email" binding:"omitempty,email"`
	DriverLicenseNumber string `json:"driver_license_number"`
	DriverLicenseState  string `json:"driver_license_state"`
	TruckNumber         string `json:"truck_number"`
	TrailerNumber       string `json:"trailer_number"`

	SecondDriverName          string `json:"second_driver_name"`
	SecondDriverPhone         string `json:"second_driver_phone"`
	SecondDriverEmail         string `json:"second_driver_email" binding:"omitempty,email"`
	SecondDriverLicenseNumber string `json:"second_driver_license_number"`
	SecondDriverLicenseState  string `json:"second_driver_license_state"`
	SecondTruckNumber         string `json:"second_truck_number"`
	SecondTrailerNumber       string `json:"second_trailer_number"`

	CheckInTime         *time.Time `json:"check_in_time"`
	PickupTime          *time.Time `json:"pickup_time"`
	DepartureTime       *time.Time `json:"departure_time"`
	CheckInDeliveryTime *time.Time `json:"check_in_delivery_time"`
	DeliveryTime        *time.Time `json:"delivery_time"`
}

// ResolveStatus parses the requested status against the closed set.
func (r LifecycleTransitionRequest) ResolveStatus() (entities.BidStatus, error) {
	status, ok := entities.ParseBidStatus(strings.TrimSpace(r.Status))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatusValue, r.Status)
	}
	return status, nil
}

// ResolveDriver trims and shape-checks the driver-pair fields.
func (r LifecycleTransitionRequest) ResolveDriver() (entities.DriverPair, error) {
	d := entities.DriverPair{
		DriverName:          strings.TrimSpace(r.DriverName),
		DriverPhone:         strings.TrimSpace(r.DriverPhone),
		DriverEmail:         strings.TrimSpace(r.DriverEmail),
		DriverLicenseNumber: strings.TrimSpace(r.DriverLicenseNumber),
		DriverLicenseState:  strings.ToUpper(strings.TrimSpace(r.DriverLicenseState)),
		TruckNumber:         strings.TrimSpace(r.TruckNumber),
		TrailerNumber:       strings.TrimSpace(r.TrailerNumber),

		SecondDriverName:          strings.TrimSpace(r.SecondDriverName),
		SecondDriverPhone:         strings.TrimSpace(r.SecondDriverPhone),
		SecondDriverEmail:         strings.TrimSpace(r.SecondDriverEmail),
		SecondDriverLicenseNumber: strings.TrimSpace(r.SecondDriverLicenseNumber),
		SecondDriverLicenseState:  strings.ToUpper(strings.TrimSpace(r.SecondDriverLicenseState)),
		SecondTruckNumber:         strings.TrimSpace(r.SecondTruckNumber),
		SecondTrailerNumber:       strings.TrimSpace(r.SecondTrailerNumber),
	}

	for _, phone := range []string{d.DriverPhone, d.SecondDriverPhone} {
		if phone != "" && !phoneRx.MatchString(phone) {
			return entities.DriverPair{}, ErrInvalidPhone
		}
	}
	for _, state := range []string{d.DriverLicenseState, d.SecondDriverLicenseState} {
		if state != "" && !licenseStateRx.MatchString(state) {
			return entities.DriverPair{}, ErrInvalidLicense
		}
	}
	return d, nil
}

// ResolvePhaseTimes returns the transition timestamps, rejecting any
// timestamp that does not belong to the requested status. Acceptance and
// driver_info_update carry no phase timestamp at all.
func (r LifecycleTransitionRequest) ResolvePhaseTimes(status entities.BidStatus) (entities.PhaseTimes, error) {
	provided := []struct {
		value     *time.Time
		belongsTo entities.BidStatus
	}{
		{r.CheckInTime, entities.BidStatusCheckedInOrigin},
		{r.PickupTime, entities.BidStatusPickedUp},
		{r.DepartureTime, entities.BidStatusDepartedOrigin},
		{r.CheckInDeliveryTime, entities.BidStatusCheckedInDestination},
		{r.DeliveryTime, entities.BidStatusDelivered},
	}
	for _, p := range provided {
		if p.value != nil && status != p.belongsTo {
			return entities.PhaseTimes{}, ErrMisplacedPhaseTime
		}
	}
	return entities.PhaseTimes{
		CheckInTime:         r.CheckInTime,
		PickupTime:          r.PickupTime,
		DepartureTime:       r.DepartureTime,
		CheckInDeliveryTime: r.CheckInDeliveryTime,
		DeliveryTime:        r.DeliveryTime,
	}, nil
}
