package store

import "github.com/MKhiriev/go-crew-pass/models"

// Keys under which the session is persisted.
const (
	KeyAuthToken      = "authToken"
	KeyWorkerName     = "workerName"
	KeyContractorName = "contractorName"
	KeyAdminName      = "adminName"
	KeyUserData       = "userData"
	KeyRole           = "role"
	KeyAadhaar        = "aadhar"
)

// DisplayNameKey returns the key holding the greeting name for role, or ""
// for an unknown role.
func DisplayNameKey(role models.Role) string {
	switch role {
	case models.RoleWorker:
		return KeyWorkerName
	case models.RoleContractor:
		return KeyContractorName
	case models.RoleAdmin:
		return KeyAdminName
	default:
		return ""
	}
}

// SessionKeys lists every key a logout must remove.
func SessionKeys() []string {
	return []string{
		KeyAuthToken,
		KeyWorkerName,
		KeyContractorName,
		KeyAdminName,
		KeyUserData,
		KeyRole,
		KeyAadhaar,
	}
}
