package api

import (
	"time"

	"vaxreg/internal/models"
	pb "vaxreg/internal/proto"
)

// parseTime decodes an RFC 3339 wire timestamp. An empty string decodes
// to the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func fromProtoUser(u *pb.User) (*models.User, error) {
	role, err := models.ParseRole(u.Role)
	if err != nil {
		return nil, err
	}

	createdAt, err := parseTime(u.CreatedAt)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          u.Id,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        role,
		CreatedAt:   createdAt,
	}

	if u.LastLogin != "" {
		t, err := parseTime(u.LastLogin)
		if err != nil {
			return nil, err
		}
		user.LastLogin = &t
	}

	return user, nil
}

func fromProtoRecord(r *pb.VaccinationType) (*models.VaccinationType, error) {
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &models.VaccinationType{
		ID:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func fromProtoRecords(rs []*pb.VaccinationType) ([]*models.VaccinationType, error) {
	out := make([]*models.VaccinationType, 0, len(rs))
	for _, r := range rs {
		m, err := fromProtoRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func fromProtoEvent(e *pb.ChangeEvent) (models.ChangeEvent, error) {
	event := models.ChangeEvent{
		Type:     models.ChangeType(e.Type),
		RecordID: e.RecordId,
	}
	if e.Record != nil {
		r, err := fromProtoRecord(e.Record)
		if err != nil {
			return models.ChangeEvent{}, err
		}
		event.Record = r
	}
	return event, nil
}
