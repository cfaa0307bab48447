package domain

import "time"

// Person is the public view of a roommate, as embedded in expenses and the
// participant picker.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	UPIID     string `json:"upi_id,omitempty"`
}

// User is a registered tenant. RoomID ties the user to the shared living
// unit whose ledger they see.
type User struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	UPIID        string    `json:"upi_id,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToPerson strips the private fields.
func (u *User) ToPerson() Person {
	return Person{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		UPIID:     u.UPIID,
	}
}
