package domain

import "time"

type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleManager:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountDisabled AccountStatus = "disabled"
	AccountDeleted  AccountStatus = "deleted"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountDisabled, AccountDeleted:
		return true
	}
	return false
}

// Capability is the closed set of access levels an actor can hold. Every
// role check in the system goes through ResolveCapability, so there is a
// single place mapping profiles to permissions.
type Capability int

const (
	CapabilityGuest Capability = iota // no session
	CapabilityUser
	CapabilityAdmin
	CapabilityManager
)

// ResolveCapability maps a profile (possibly absent) to its capability.
// A disabled or deleted account resolves to guest: it may still hold a
// token but can act on nothing.
func ResolveCapability(p *Profile) Capability {
	if p == nil || p.Status != AccountActive {
		return CapabilityGuest
	}
	switch p.Role {
	case RoleAdmin:
		return CapabilityAdmin
	case RoleManager:
		return CapabilityManager
	case RoleUser:
		return CapabilityUser
	}
	return CapabilityGuest
}

// CanVerifyPayments reports whether the capability may enter admin-only
// state: payment verification, user management, letter generation.
func (c Capability) CanVerifyPayments() bool {
	return c == CapabilityAdmin || c == CapabilityManager
}

type Profile struct {
	ID                    string        `json:"id"`
	Email                 string        `json:"email"`
	PasswordHash          string        `json:"-"`
	FullName              string        `json:"full_name"`
	Phone                 string        `json:"phone"`
	Address               string        `json:"address"`
	Gender                string        `json:"gender"`
	DateOfBirth           string        `json:"date_of_birth"`
	CallUpNumber          string        `json:"call_up_number"`
	StateOfOrigin         string        `json:"state_of_origin"`
	LGA                   string        `json:"lga"`
	Institution           string        `json:"institution"`
	EmergencyContactName  string        `json:"emergency_contact_name"`
	EmergencyContactPhone string        `json:"emergency_contact_phone"`
	NextOfKinName         string        `json:"next_of_kin_name"`
	NextOfKinPhone        string        `json:"next_of_kin_phone"`
	Role                  Role          `json:"role"`
	Status                AccountStatus `json:"status"`
	CreatedAt             time.Time     `json:"created_at"`
}

type RegisterInput struct {
	Email                 string
	Password              string
	FullName              string
	Phone                 string
	Address               string
	Gender                string
	DateOfBirth           string
	CallUpNumber          string
	StateOfOrigin         string
	LGA                   string
	Institution           string
	EmergencyContactName  string
	EmergencyContactPhone string
	NextOfKinName         string
	NextOfKinPhone        string
}

// UserDetails is the admin view of a profile: the profile plus its
// booking history.
type UserDetails struct {
	Profile  Profile   `json:"profile"`
	Bookings []Booking `json:"bookings"`
}
