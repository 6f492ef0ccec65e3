package domain

import "time"

// User is the profile document kept alongside credentials. IsAdmin
// grants access to cross-user order management.
type User struct {
	ID                string    `json:"id" bson:"_id"`
	Email             string    `json:"email" bson:"email"`
	PasswordHash      string    `json:"-" bson:"password_hash"`
	FirstName         string    `json:"first_name" bson:"first_name"`
	LastName          string    `json:"last_name" bson:"last_name"`
	PhoneNumber       string    `json:"phone_number" bson:"phone_number"`
	DeliveryAddresses []string  `json:"delivery_addresses" bson:"delivery_addresses"`
	IsAdmin           bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
