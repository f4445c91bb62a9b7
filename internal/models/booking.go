package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	PersonID  int       `json:"person_id"`
	RoomID    int       `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
