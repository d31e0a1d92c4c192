package api

import "context"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type BasicDemographics struct {
	FullName         string  `json:"fullName"`
	Gender           string  `json:"gender"`
	DateOfBirth      string  `json:"dateOfBirth"`
	BloodGroup       string  `json:"bloodGroup"`
	ContactNumber    string  `json:"contactNumber"`
	Email            string  `json:"email"`
	Address          Address `json:"address"`
	EmergencyContact string  `json:"emergencyContact"`
	MaritalStatus    string  `json:"maritalStatus"`
	Occupation       string  `json:"occupation"`
}

type MedicalHistoryItem struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OnsetDate   string `json:"onsetDate,omitempty"`
	Severity    string `json:"severity,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type LifestyleInformation struct {
	SmokingHabit          string `json:"smokingHabit"`
	AlcoholHabit          string `json:"alcoholHabit"`
	DietaryPreferences    string `json:"dietaryPreferences"`
	PhysicalActivityLevel string `json:"physicalActivityLevel"`
	SleepHours            int    `json:"sleepHours"`
	StressLevel           string `json:"stressLevel"`
}

type VitalSigns struct {
	BloodPressureSystolic  int     `json:"bloodPressureSystolic"`
	BloodPressureDiastolic int     `json:"bloodPressureDiastolic"`
	Pulse                  int     `json:"pulse"`
	Temperature            float64 `json:"temperature"`
	RespiratoryRate        int     `json:"respiratoryRate"`
	OxygenSaturation       int     `json:"oxygenSaturation"`
	RecordedAt             string  `json:"recordedAt,omitempty"`
}

type CurrentMedication struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	IsActive  bool   `json:"isActive"`
}

type CurrentHealthData struct {
	Weight      float64             `json:"weight"`
	Height      float64             `json:"height"`
	BMI         float64             `json:"bmi,omitempty"`
	Vitals      VitalSigns          `json:"vitals"`
	Medications []CurrentMedication `json:"medications"`
	LastUpdated string              `json:"lastUpdated,omitempty"`
}

type HealthDocument struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	UploadDate  string `json:"uploadDate"`
	Size        int64  `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
}

type ConsentPreferences struct {
	DataSharingConsent      bool   `json:"dataSharingConsent"`
	SMSNotifications        bool   `json:"smsNotifications"`
	EmailNotifications      bool   `json:"emailNotifications"`
	PreferredLanguage       string `json:"preferredLanguage"`
	EmergencyContactConsent bool   `json:"emergencyContactConsent"`
	ResearchParticipation   bool   `json:"researchParticipation"`
}

type PatientHealthRecord struct {
	ID                 string               `json:"id,omitempty"`
	PatientID          string               `json:"patientId"`
	BasicDemographics  BasicDemographics    `json:"basicDemographics"`
	MedicalHistory     []MedicalHistoryItem `json:"medicalHistory"`
	Lifestyle          LifestyleInformation `json:"lifestyle"`
	CurrentHealth      CurrentHealthData    `json:"currentHealth"`
	Documents          []HealthDocument     `json:"documents"`
	ConsentPreferences ConsentPreferences   `json:"consentPreferences"`
	UpdatedAt          string               `json:"updatedAt,omitempty"`
}

func (c *Client) GetHealthRecord(ctx context.Context, patientID string) (*PatientHealthRecord, error) {
	var out PatientHealthRecord
	if err := c.get(ctx, "/health-records/"+patientID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHealthRecordSection patches one named section of the record
// (demographics, lifestyle, current-health, consent). The section data is
// opaque to this layer.
func (c *Client) UpdateHealthRecordSection(ctx context.Context, patientID, section string, data any) (*PatientHealthRecord, error) {
	var out PatientHealthRecord
	if err := c.patch(ctx, "/health-records/"+patientID+"/section/"+section, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddMedicalHistoryItem(ctx context.Context, patientID string, item MedicalHistoryItem) (*MedicalHistoryItem, error) {
	var out MedicalHistoryItem
	if err := c.post(ctx, "/health-records/"+patientID+"/medical-history", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMedicalHistoryItem(ctx context.Context, patientID, itemID string) error {
	return c.delete(ctx, "/health-records/"+patientID+"/medical-history/"+itemID)
}

func (c *Client) ListHealthDocuments(ctx context.Context, patientID string) ([]HealthDocument, error) {
	var out []HealthDocument
	if err := c.get(ctx, "/health-documents/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UploadHealthDocument(ctx context.Context, patientID, docType, filename string, content []byte) (*HealthDocument, error) {
	var out HealthDocument
	fields := map[string]string{"type": docType}
	files := []FileUpload{{Field: "file", Filename: filename, Content: content}}
	if err := c.postMultipart(ctx, "/health-documents/"+patientID+"/upload", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHealthDocument(ctx context.Context, documentID string) error {
	return c.delete(ctx, "/health-documents/"+documentID)
}

func (c *Client) DownloadHealthDocument(ctx context.Context, filename string) ([]byte, string, error) {
	return c.getBlob(ctx, "/health-documents/download/"+filename)
}
