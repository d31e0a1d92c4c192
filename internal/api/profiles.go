package api

import "context"

// ProfileStatus is the admin-controlled verification tri-state gating slot
// creation and booking.
type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "PENDING"
	ProfileApproved ProfileStatus = "APPROVED"
	ProfileRejected ProfileStatus = "REJECTED"
)

type DoctorProfile struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"userId"`
	FirstName          string        `json:"firstName"`
	LastName           string        `json:"lastName"`
	Gender             string        `json:"gender"`
	DateOfBirth        string        `json:"dateOfBirth"`
	ContactNumber      string        `json:"contactNumber"`
	Address            string        `json:"address"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"longitude,omitempty"`
	Specialization     []string      `json:"specialization"`
	Department         string        `json:"department"`
	YearsOfExperience  int           `json:"yearsOfExperience"`
	ConsultationFees   *float64      `json:"consultationFees,omitempty"`
	LanguagesSpoken    []string      `json:"languagesSpoken"`
	MedicalDegreeURL   string        `json:"medicalDegreeUrl,omitempty"`
	LicenseNumber      string        `json:"licenseNumber"`
	GovernmentIDNumber string        `json:"governmentIdNumber"`
	GovernmentIDURL    string        `json:"governmentIdUrl,omitempty"`
	AffiliationURL     string        `json:"affiliationProofUrl,omitempty"`
	IsProfileComplete  bool          `json:"isProfileComplete"`
	Status             ProfileStatus `json:"status"`
}

type PatientProfile struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"userId"`
	FirstName          string        `json:"firstName"`
	LastName           string        `json:"lastName"`
	Gender             string        `json:"gender"`
	DateOfBirth        string        `json:"dateOfBirth"`
	ContactNumber      string        `json:"contactNumber"`
	Address            string        `json:"address"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"longitude,omitempty"`
	EmergencyContact   string        `json:"emergencyContact,omitempty"`
	GovernmentIDNumber string        `json:"governmentIdNumber"`
	GovernmentIDURL    string        `json:"governmentIdUrl,omitempty"`
	IsProfileComplete  bool          `json:"isProfileComplete"`
	Status             ProfileStatus `json:"status"`
}

type VerifyProfileRequest struct {
	IsVerified bool `json:"isVerified"`
}

// GetDoctorProfile fetches a doctor profile by username. A missing profile
// (not yet created) comes back as a not-found error the caller treats as an
// empty state.
func (c *Client) GetDoctorProfile(ctx context.Context, username string) (*DoctorProfile, error) {
	var p DoctorProfile
	if err := c.get(ctx, "/profiles/doctor/"+username, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetPatientProfile(ctx context.Context, username string) (*PatientProfile, error) {
	var p PatientProfile
	if err := c.get(ctx, "/profiles/patient/"+username, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateDoctorProfile(ctx context.Context, profile DoctorProfile) (*DoctorProfile, error) {
	var p DoctorProfile
	if err := c.post(ctx, "/profiles/doctor", profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePatientProfile(ctx context.Context, profile PatientProfile) (*PatientProfile, error) {
	var p PatientProfile
	if err := c.post(ctx, "/profiles/patient", profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateDoctorProfile(ctx context.Context, id string, profile DoctorProfile) (*DoctorProfile, error) {
	var p DoctorProfile
	if err := c.put(ctx, "/profiles/doctor/"+id, profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePatientProfile(ctx context.Context, id string, profile PatientProfile) (*PatientProfile, error) {
	var p PatientProfile
	if err := c.put(ctx, "/profiles/patient/"+id, profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadProfileDocument submits a credential document (license, degree,
// affiliation proof) as multipart form data and returns the stored file URL.
func (c *Client) UploadProfileDocument(ctx context.Context, field, filename string, content []byte) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	files := []FileUpload{{Field: field, Filename: filename, Content: content}}
	if err := c.postMultipart(ctx, "/profiles/upload", nil, files, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// GetProfileDocument fetches an uploaded credential document as a binary blob.
func (c *Client) GetProfileDocument(ctx context.Context, filename string) ([]byte, string, error) {
	return c.getBlob(ctx, "/profiles/document/"+filename)
}

// Admin verification listings.

func (c *Client) GetPendingDoctors(ctx context.Context) ([]DoctorProfile, error) {
	var out []DoctorProfile
	if err := c.get(ctx, "/profiles/doctor/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPendingPatients(ctx context.Context) ([]PatientProfile, error) {
	var out []PatientProfile
	if err := c.get(ctx, "/profiles/patient/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetApprovedDoctors(ctx context.Context) ([]DoctorProfile, error) {
	var out []DoctorProfile
	if err := c.get(ctx, "/profiles/doctor/approved", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyDoctorProfile(ctx context.Context, id string, isVerified bool) error {
	return c.patch(ctx, "/profiles/doctor/"+id+"/verify", VerifyProfileRequest{IsVerified: isVerified}, nil)
}

func (c *Client) VerifyPatientProfile(ctx context.Context, id string, isVerified bool) error {
	return c.patch(ctx, "/profiles/patient/"+id+"/verify", VerifyProfileRequest{IsVerified: isVerified}, nil)
}
