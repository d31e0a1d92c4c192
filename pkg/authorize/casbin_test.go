package authorize

import (
	"context"
	"testing"
)

func newTestAuthorization(t *testing.T) IAuthorization {
	t.Helper()

	e, err := NewEnforcer()
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("failed to create authorization: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		auth := newTestAuthorization(t)
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	_, err := auth.AddPermission(ctx, RoleDoctor, ResourceTimeSlot, ActionCreate, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		role     Role
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			role:     RoleDoctor,
			resource: ResourceTimeSlot,
			action:   ActionCreate,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "denied when no permission",
			role:     RoleDoctor,
			resource: ResourceAccount,
			action:   ActionDelete,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "denied for other role",
			role:     RolePatient,
			resource: ResourceTimeSlot,
			action:   ActionCreate,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty role",
			role:     "",
			resource: ResourceTimeSlot,
			action:   ActionCreate,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown role",
			role:     Role("NURSE"),
			resource: ResourceTimeSlot,
			action:   ActionCreate,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			role:     RoleDoctor,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			role:     RoleDoctor,
			resource: ResourceTimeSlot,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.role, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	auth.AddPermission(ctx, RoleAdmin, ResourceVerification, ActionVerify, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, RoleAdmin, ResourceVerification, ActionVerify)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, RoleAdmin, ResourcePrescription, ActionCreate)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, RolePatient, ResourceReview, ActionCreate, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		removed, err := auth.RemovePermission(ctx, RolePatient, ResourceReview, ActionCreate, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RolePatient, ResourceReview, ActionCreate, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})

	t.Run("deny rule overrides allow", func(t *testing.T) {
		auth.AddPermission(ctx, RolePatient, ResourceHealthRecord, WildcardAction, EffectAllow)
		auth.AddPermission(ctx, RolePatient, ResourceHealthRecord, ActionDelete, EffectDeny)

		allowed, err := auth.Enforce(ctx, RolePatient, ResourceHealthRecord, ActionDelete)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if allowed {
			t.Error("Expected deny rule to win")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies failed: %v", err)
	}

	tests := []struct {
		name     string
		role     Role
		resource Resource
		action   Action
		want     bool
	}{
		{"doctor creates slot", RoleDoctor, ResourceTimeSlot, ActionCreate, true},
		{"doctor approves appointment", RoleDoctor, ResourceAppointment, ActionApprove, true},
		{"doctor cannot verify profiles", RoleDoctor, ResourceVerification, ActionVerify, false},
		{"patient books appointment", RolePatient, ResourceAppointment, ActionCreate, true},
		{"patient revokes document access", RolePatient, ResourceDocumentPermission, ActionRevoke, true},
		{"patient cannot create slots", RolePatient, ResourceTimeSlot, ActionCreate, false},
		{"patient cannot create prescriptions", RolePatient, ResourcePrescription, ActionCreate, false},
		{"admin verifies profiles", RoleAdmin, ResourceVerification, ActionVerify, true},
		{"admin removes accounts", RoleAdmin, ResourceAccount, ActionDelete, true},
		{"admin cannot book appointments", RoleAdmin, ResourceAppointment, ActionCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.role, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("Enforce failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%s, %s, %s) = %v, want %v", tt.role, tt.resource, tt.action, got, tt.want)
			}
		})
	}
}
