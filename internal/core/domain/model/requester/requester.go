package requester

import (
	"errors"
	"net/mail"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/guard"
)

const (
	MaxNameLength  = 100
	MinPhoneLength = 9
	MaxPhoneLength = 20
)

// Names of the contact fields reported by MissingData.
const (
	FieldEmail   = "email"
	FieldAddress = "address"
	FieldPhone   = "phone"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrRequesterIsNotConstructed is returned when using a zero-value Requester.
	ErrRequesterIsNotConstructed = errors.New("Requester must be created via NewRequester constructor")
)

// Profile carries every editable attribute of a requester. It is the input of
// both NewRequester and Update.
type Profile struct {
	Name    string
	Kind    Kind
	Phone   string
	Email   kernel.Knowable[string]
	Address kernel.Knowable[string]
	Hours   ServiceHours
	ZoneID  kernel.UUID
}

// Requester is a veterinarian, clinic, technician, assistant or pet tutor who
// asks for samples to be picked up. Every requester lives in one zone.
//
// Email and address are either known or explicitly flagged as unknown. NewRequester
// and Update refuse anything else. RestoreRequester accepts unsettled fields from
// older rows; IsComplete treats them as missing.
type Requester struct {
	id      kernel.UUID
	name    string
	kind    Kind
	phone   string
	email   kernel.Knowable[string]
	address kernel.Knowable[string]
	hours   ServiceHours
	zoneID  kernel.UUID
	guard   guard.ConstructorGuard
}

// NewRequester validates the whole profile and reports every violation at once.
func NewRequester(id kernel.UUID, profile Profile) (*Requester, error) {
	r := &Requester{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(profile.Name),
		r.setKind(profile.Kind),
		r.setPhone(profile.Phone),
		r.setEmail(profile.Email),
		r.setAddress(profile.Address),
		r.setZoneID(profile.ZoneID),
	); err != nil {
		return nil, err
	}
	r.hours = profile.Hours

	return r, nil
}

// RestoreRequester rebuilds a requester from the store. Only the identity,
// name and zone are checked; contact fields are taken as stored, even when
// they break the rules NewRequester enforces.
func RestoreRequester(id kernel.UUID, profile Profile) (*Requester, error) {
	r := &Requester{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(profile.Name),
		r.setZoneID(profile.ZoneID),
	); err != nil {
		return nil, err
	}
	r.kind = profile.Kind
	r.phone = strings.TrimSpace(profile.Phone)
	r.email = profile.Email
	r.address = profile.Address
	r.hours = profile.Hours

	return r, nil
}

// Update replaces the profile. Nothing changes when validation fails.
func (r *Requester) Update(profile Profile) error {
	updated, err := NewRequester(r.id, profile)
	if err != nil {
		return err
	}

	r.name = updated.name
	r.kind = updated.kind
	r.phone = updated.phone
	r.email = updated.email
	r.address = updated.address
	r.hours = updated.hours
	r.zoneID = updated.zoneID
	return nil
}

func (r *Requester) Validate() error {
	if r == nil {
		return ErrRequesterIsNotConstructed
	}
	return r.guard.Validate(ErrRequesterIsNotConstructed)
}

func (r *Requester) IsEqual(other *Requester) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Requester) ID() kernel.UUID                  { return r.id }
func (r *Requester) Name() string                     { return r.name }
func (r *Requester) Kind() Kind                       { return r.kind }
func (r *Requester) Phone() string                    { return r.phone }
func (r *Requester) Email() kernel.Knowable[string]   { return r.email }
func (r *Requester) Address() kernel.Knowable[string] { return r.address }
func (r *Requester) ServiceHours() ServiceHours       { return r.hours }
func (r *Requester) ZoneID() kernel.UUID              { return r.zoneID }

// Profile returns a copy of the editable attributes.
func (r *Requester) Profile() Profile {
	return Profile{
		Name:    r.name,
		Kind:    r.kind,
		Phone:   r.phone,
		Email:   r.email,
		Address: r.address,
		Hours:   r.hours,
		ZoneID:  r.zoneID,
	}
}

// IsComplete reports whether email and address are each either known or
// flagged as unknown.
func (r *Requester) IsComplete() bool {
	return r.email.IsSettled() && r.address.IsSettled()
}

// HasUnknownData reports whether email or address was flagged as unknown.
// Such requesters are counted as incomplete on the dashboard.
func (r *Requester) HasUnknownData() bool {
	return r.email.IsUnknown() || r.address.IsUnknown()
}

// PickupAddress returns the address to copy into a request, if there is one.
func (r *Requester) PickupAddress() (string, bool) {
	address, ok := r.address.Value()
	if !ok || strings.TrimSpace(address) == "" {
		return "", false
	}
	return address, true
}

// MissingData lists the contact fields staff still has to collect, in the
// order email, address, phone.
func (r *Requester) MissingData() []string {
	var missing []string
	if email, ok := r.email.Value(); !ok || email == "" {
		missing = append(missing, FieldEmail)
	}
	if _, ok := r.PickupAddress(); !ok {
		missing = append(missing, FieldAddress)
	}
	if r.phone == "" {
		missing = append(missing, FieldPhone)
	}
	return missing
}

func (r *Requester) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Requester) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := len([]rune(name)); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	r.name = name
	return nil
}

func (r *Requester) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Requester) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	if n := len([]rune(phone)); n < MinPhoneLength || n > MaxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, MinPhoneLength, MaxPhoneLength)
	}
	r.phone = phone
	return nil
}

func (r *Requester) setEmail(email kernel.Knowable[string]) error {
	email, err := settleText(FieldEmail, email)
	if err != nil {
		return err
	}
	if value, ok := email.Value(); ok {
		if _, err := mail.ParseAddress(value); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(FieldEmail, err)
		}
	}
	r.email = email
	return nil
}

func (r *Requester) setAddress(address kernel.Knowable[string]) error {
	address, err := settleText(FieldAddress, address)
	if err != nil {
		return err
	}
	r.address = address
	return nil
}

func (r *Requester) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("zone", err)
	}
	r.zoneID = zoneID
	return nil
}

// settleText trims a known value and treats a blank one as not given.
func settleText(field string, v kernel.Knowable[string]) (kernel.Knowable[string], error) {
	if value, ok := v.Value(); ok {
		value = strings.TrimSpace(value)
		if value == "" {
			return v, errs.NewInvariantViolationError(field + " must be given or flagged as unknown")
		}
		return kernel.Known(value), nil
	}
	if err := v.Validate(field); err != nil {
		return v, err
	}
	return v, nil
}

// ContactField turns the value-plus-flag pair used by forms and storage into a
// Knowable. Exactly one side must be set.
func ContactField(field string, value *string, unknown bool) (kernel.Knowable[string], error) {
	hasValue := value != nil && strings.TrimSpace(*value) != ""
	switch {
	case hasValue && unknown:
		return kernel.Knowable[string]{}, errs.NewInvariantViolationError(field + " cannot be given and flagged as unknown at the same time")
	case hasValue:
		return kernel.Known(strings.TrimSpace(*value)), nil
	case unknown:
		return kernel.Unknown[string](), nil
	default:
		return kernel.Knowable[string]{}, errs.NewInvariantViolationError(field + " must be given or flagged as unknown")
	}
}
