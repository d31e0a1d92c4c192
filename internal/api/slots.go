package api

import "context"

type TimeSlot struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	Date        string `json:"date"`
	TimeFrom    string `json:"timeFrom"`
	TimeTo      string `json:"timeTo"`
	IsAvailable bool   `json:"isAvailable"`
	Duration    int    `json:"duration,omitempty"`
}

// GenerateSlotsRequest describes one availability window the server
// decomposes into discrete bookable slots. Date is a local calendar day
// (YYYY-MM-DD) and Timezone the IANA zone name the boundaries belong to.
type GenerateSlotsRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	TimeFrom string `json:"timeFrom"`
	TimeTo   string `json:"timeTo"`
	Duration int    `json:"duration"`
	Timezone string `json:"timezone"`
}

func (c *Client) GenerateTimeSlots(ctx context.Context, req GenerateSlotsRequest) ([]TimeSlot, error) {
	var out []TimeSlot
	if err := c.post(ctx, "/slots/generate", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorSlots(ctx context.Context, doctorID string) ([]TimeSlot, error) {
	var out []TimeSlot
	if err := c.get(ctx, "/slots/doctor/"+doctorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAvailableSlots lists a doctor's still-bookable slots on one local date.
func (c *Client) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]TimeSlot, error) {
	var out []TimeSlot
	if err := c.get(ctx, "/slots/available/"+doctorID+"?date="+date, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTimeSlot(ctx context.Context, id string) error {
	return c.delete(ctx, "/slots/"+id)
}

// CheckSlotConflict asks the server whether a proposed window overlaps
// existing slots before generation is attempted.
func (c *Client) CheckSlotConflict(ctx context.Context, req GenerateSlotsRequest) (bool, error) {
	var resp struct {
		HasConflict bool `json:"hasConflict"`
	}
	if err := c.post(ctx, "/slots/check-conflict", req, &resp); err != nil {
		return false, err
	}
	return resp.HasConflict, nil
}
