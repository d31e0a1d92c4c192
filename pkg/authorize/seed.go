package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the three roles.
// The matrix mirrors what the backend enforces so a forbidden action fails
// locally before a request is ever sent.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	adminPolicies := []PermissionPolicy{
		// Admin: platform oversight, no clinical actions
		{RoleAdmin, ResourceVerification, ActionList, EffectAllow},
		{RoleAdmin, ResourceVerification, ActionVerify, EffectAllow},
		{RoleAdmin, ResourceAccount, ActionList, EffectAllow},
		{RoleAdmin, ResourceAccount, ActionDelete, EffectAllow},
		{RoleAdmin, ResourceDoctorProfile, ActionRead, EffectAllow},
		{RoleAdmin, ResourcePatientProfile, ActionRead, EffectAllow},
	}

	doctorPolicies := []PermissionPolicy{
		// Doctor: own profile, schedule and clinical workflow
		{RoleDoctor, ResourceDoctorProfile, ActionRead, EffectAllow},
		{RoleDoctor, ResourceDoctorProfile, ActionUpdate, EffectAllow},
		{RoleDoctor, ResourceTimeSlot, ActionCreate, EffectAllow},
		{RoleDoctor, ResourceTimeSlot, ActionDelete, EffectAllow},
		{RoleDoctor, ResourceTimeSlot, ActionList, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionApprove, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionReject, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionComplete, EffectAllow},
		{RoleDoctor, ResourceEmergencyRequest, ActionList, EffectAllow},
		{RoleDoctor, ResourceEmergencyRequest, ActionApprove, EffectAllow},
		{RoleDoctor, ResourceEmergencyRequest, ActionReject, EffectAllow},
		{RoleDoctor, ResourceAvailability, ActionRead, EffectAllow},
		{RoleDoctor, ResourceAvailability, ActionUpdate, EffectAllow},
		{RoleDoctor, ResourceDocumentPermission, ActionCreate, EffectAllow},
		{RoleDoctor, ResourceDocumentPermission, ActionRead, EffectAllow},
		{RoleDoctor, ResourceHealthRecord, ActionRead, EffectAllow},
		{RoleDoctor, ResourcePrescription, ActionCreate, EffectAllow},
		{RoleDoctor, ResourcePrescription, ActionList, EffectAllow},
		{RoleDoctor, ResourceReview, ActionList, EffectAllow},
		{RoleDoctor, ResourcePatientProfile, ActionRead, EffectAllow},
	}

	patientPolicies := []PermissionPolicy{
		// Patient: own profile, booking and own records
		{RolePatient, ResourcePatientProfile, ActionRead, EffectAllow},
		{RolePatient, ResourcePatientProfile, ActionUpdate, EffectAllow},
		{RolePatient, ResourceTimeSlot, ActionList, EffectAllow},
		{RolePatient, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, ResourceAppointment, ActionUpdate, EffectAllow},
		{RolePatient, ResourceAppointment, ActionDelete, EffectAllow},
		{RolePatient, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, ResourceEmergencyRequest, ActionCreate, EffectAllow},
		{RolePatient, ResourceEmergencyRequest, ActionComplete, EffectAllow},
		{RolePatient, ResourceEmergencyRequest, ActionList, EffectAllow},
		{RolePatient, ResourceDocumentPermission, ActionApprove, EffectAllow},
		{RolePatient, ResourceDocumentPermission, ActionReject, EffectAllow},
		{RolePatient, ResourceDocumentPermission, ActionRevoke, EffectAllow},
		{RolePatient, ResourceDocumentPermission, ActionList, EffectAllow},
		{RolePatient, ResourceHealthRecord, ActionRead, EffectAllow},
		{RolePatient, ResourceHealthRecord, ActionUpdate, EffectAllow},
		{RolePatient, ResourcePrescription, ActionList, EffectAllow},
		{RolePatient, ResourceReview, ActionCreate, EffectAllow},
		{RolePatient, ResourceReview, ActionList, EffectAllow},
		{RolePatient, ResourceDoctorProfile, ActionRead, EffectAllow},
	}

	allPolicies := append(append(adminPolicies, doctorPolicies...), patientPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}
