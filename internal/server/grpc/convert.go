package grpc

import (
	"time"

	"vaxreg/internal/models"
	pb "vaxreg/internal/proto"
)

// Timestamps travel as RFC 3339 strings on the wire; an empty string stands
// for an unset optional value.

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func toProtoUser(u *models.User) *pb.User {
	out := &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		CreatedAt:   formatTime(u.CreatedAt),
	}
	if u.LastLogin != nil {
		out.LastLogin = formatTime(*u.LastLogin)
	}
	return out
}

func toProtoRecord(rec *models.VaccinationType) *pb.VaccinationType {
	return &pb.VaccinationType{
		Id:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   formatTime(rec.CreatedAt),
		UpdatedAt:   formatTime(rec.UpdatedAt),
	}
}

func toProtoRecords(recs []*models.VaccinationType) []*pb.VaccinationType {
	out := make([]*pb.VaccinationType, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProtoRecord(rec))
	}
	return out
}

func toProtoEvent(ev models.ChangeEvent) *pb.ChangeEvent {
	out := &pb.ChangeEvent{
		Type:     string(ev.Type),
		RecordId: ev.RecordID,
	}
	if ev.Record != nil {
		out.Record = toProtoRecord(ev.Record)
	}
	return out
}
