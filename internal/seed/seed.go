// Package seed bootstraps an empty store with a fixed set of users, items
// and orders. It is meant to run exactly once: re-running trips the email
// unique constraint.
package seed

import (
	"github.com/cartloop-dev/cartloop/internal/auth"
	"github.com/cartloop-dev/cartloop/internal/models"
	"gorm.io/gorm"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
}

var users = []seedUser{
	{Name: "Marvin", Email: "marvin@mail.com", Password: "marvin123"},
	{Name: "LeBron", Email: "lebron@mail.com", Password: "lebron123"},
	{Name: "Kurama", Email: "kurama@mail.com", Password: "kurama123"},
}

var items = []models.Item{
	{Title: "lipstick", Image: "lipstick.jpg", Price: 15.99},
	{Title: "basketball", Image: "basketball.jpg", Price: 24.99},
	{Title: "pants", Image: "pants.jpg", Price: 50.49},
	{Title: "t-shirt", Image: "tshirt.jpg", Price: 9.99},
}

var orders = []models.Order{
	{UserID: 1, ItemID: 2, Quantity: 1},
	{UserID: 1, ItemID: 3, Quantity: 2},
	{UserID: 2, ItemID: 4, Quantity: 3},
	{UserID: 3, ItemID: 1, Quantity: 4},
}

// Load inserts the fixtures in dependency order. Passwords are stored as
// bcrypt hashes; the fixture plaintexts still work for sign-in.
func Load(conn *gorm.DB) error {
	for _, u := range users {
		hash, err := auth.HashPassword(u.Password)

		if err != nil {
			return err
		}

		user := models.User{Name: u.Name, Email: u.Email, Password: hash}

		if err := conn.Create(&user).Error; err != nil {
			return err
		}
	}

	for _, item := range items {
		if err := conn.Create(&item).Error; err != nil {
			return err
		}
	}

	for _, order := range orders {
		if err := conn.Create(&order).Error; err != nil {
			return err
		}
	}

	return nil
}
