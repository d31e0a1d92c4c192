package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Lifecycle actions
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionRevoke   Action = "revoke"
	ActionVerify   Action = "verify"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionApprove: {}, ActionReject: {}, ActionComplete: {}, ActionRevoke: {}, ActionVerify: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity
	ResourceSession       Resource = "session"
	ResourceDoctorProfile Resource = "doctor_profile"
	ResourcePatientProfile Resource = "patient_profile"

	// Scheduling
	ResourceTimeSlot    Resource = "time_slot"
	ResourceAppointment Resource = "appointment"

	// Care
	ResourceEmergencyRequest   Resource = "emergency_request"
	ResourceAvailability       Resource = "availability"
	ResourceDocumentPermission Resource = "document_permission"
	ResourceHealthRecord       Resource = "health_record"
	ResourcePrescription       Resource = "prescription"
	ResourceReview             Resource = "review"

	// Platform admin
	ResourceVerification Resource = "verification"
	ResourceAccount      Resource = "account"
)

var KnownResources = map[Resource]struct{}{
	ResourceSession: {}, ResourceDoctorProfile: {}, ResourcePatientProfile: {},
	ResourceTimeSlot: {}, ResourceAppointment: {},
	ResourceEmergencyRequest: {}, ResourceAvailability: {}, ResourceDocumentPermission: {},
	ResourceHealthRecord: {}, ResourcePrescription: {}, ResourceReview: {},
	ResourceVerification: {}, ResourceAccount: {},
}

// ----------------------------
// Roles
// ----------------------------

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin: {}, RoleDoctor: {}, RolePatient: {},
}

// IsValidRole reports whether r is one of the three MedVault roles.
func IsValidRole(r Role) bool {
	_, ok := KnownRoles[r]
	return ok
}

// ----------------------------
// Policy effects
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PermissionPolicy is one p rule: role, resource, action, effect.
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
