package entity

import "time"

const (
	RoleFarmer    = "petani"
	RoleDistiller = "penyulingan"
	RoleBuyer     = "pembeli"
	RoleAdmin     = "admin"
)

type User struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name,omitempty"`
	Email       string    `json:"email" firestore:"email,omitempty"`
	Role        string    `json:"role" firestore:"role,omitempty"`
	PhoneNumber string    `json:"phone_number" firestore:"phoneNumber,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserStats is the materialized role tally kept at metadata/userStats.
type UserStats struct {
	Total       int `json:"total" firestore:"total"`
	Petani      int `json:"petani" firestore:"petani"`
	Penyulingan int `json:"penyulingan" firestore:"penyulingan"`
	Pembeli     int `json:"pembeli" firestore:"pembeli"`
}

// CountUserStats recounts every user from scratch.
func CountUserStats(users []*User) UserStats {
	stats := UserStats{Total: len(users)}
	for _, u := range users {
		switch u.Role {
		case RoleFarmer:
			stats.Petani++
		case RoleDistiller:
			stats.Penyulingan++
		case RoleBuyer:
			stats.Pembeli++
		}
	}
	return stats
}

func (s UserStats) Fields() map[string]interface{} {
	return map[string]interface{}{
		"total":       s.Total,
		"petani":      s.Petani,
		"penyulingan": s.Penyulingan,
		"pembeli":     s.Pembeli,
	}
}
