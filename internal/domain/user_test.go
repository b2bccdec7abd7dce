package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCapability(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    Capability
	}{
		{"no session", nil, CapabilityGuest},
		{"active user", &Profile{Role: RoleUser, Status: AccountActive}, CapabilityUser},
		{"active admin", &Profile{Role: RoleAdmin, Status: AccountActive}, CapabilityAdmin},
		{"active manager", &Profile{Role: RoleManager, Status: AccountActive}, CapabilityManager},
		{"disabled admin drops to guest", &Profile{Role: RoleAdmin, Status: AccountDisabled}, CapabilityGuest},
		{"deleted user drops to guest", &Profile{Role: RoleUser, Status: AccountDeleted}, CapabilityGuest},
		{"unknown role", &Profile{Role: Role("root"), Status: AccountActive}, CapabilityGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCapability(tt.profile))
		})
	}
}

func TestCapability_CanVerifyPayments(t *testing.T) {
	assert.False(t, CapabilityGuest.CanVerifyPayments())
	assert.False(t, CapabilityUser.CanVerifyPayments())
	assert.True(t, CapabilityAdmin.CanVerifyPayments())
	assert.True(t, CapabilityManager.CanVerifyPayments())
}

func TestRoleAndStatusValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("superuser").Valid())

	assert.True(t, AccountActive.Valid())
	assert.True(t, AccountDeleted.Valid())
	assert.False(t, AccountStatus("banned").Valid())
}
