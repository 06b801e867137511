package main

import (
	"errors"
	"log"

	"foodcourt/internal/models"
	"foodcourt/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// seedUsers provisions the default accounts when they do not exist yet.
// One admin, and a manager plus a member per country.
func seedUsers(repo repositories.UserRepository) {
	users := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: "u1", Name: "Admin User", Email: "admin@food.com", Role: models.RoleAdmin, Country: models.CountryIndia}, "admin123"},
		{models.User{ID: "u2", Name: "Manager India", Email: "manager.india@food.com", Role: models.RoleManager, Country: models.CountryIndia}, "manager123"},
		{models.User{ID: "u3", Name: "Manager America", Email: "manager.america@food.com", Role: models.RoleManager, Country: models.CountryAmerica}, "manager123"},
		{models.User{ID: "u4", Name: "Member India", Email: "member.india@food.com", Role: models.RoleMember, Country: models.CountryIndia}, "member123"},
		{models.User{ID: "u5", Name: "Member America", Email: "member.america@food.com", Role: models.RoleMember, Country: models.CountryAmerica}, "member123"},
	}

	for _, entry := range users {
		if _, err := repo.GetByEmail(entry.user.Email); err == nil {
			continue
		} else if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error checking seed user %s: %v", entry.user.Email, err)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for seed user %s: %v", entry.user.Email, err)
			continue
		}
		entry.user.Password = string(hashed)
		if err := repo.Create(&entry.user); err != nil {
			log.Printf("Error seeding user %s: %v", entry.user.Email, err)
		} else {
			log.Printf("Seeded user: %s (%s, %s)", entry.user.Email, entry.user.Role, entry.user.Country)
		}
	}
}

// seedRestaurants returns the restaurant catalog fixtures.
func seedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "r1", Name: "Spice Route", Country: models.CountryIndia, Description: "Biryani, Mughlai, North Indian"},
		{ID: "r2", Name: "Taj Mahal Kitchen", Country: models.CountryIndia, Description: "North Indian, Curries, Breads"},
		{ID: "r3", Name: "Wow! Momo", Country: models.CountryIndia, Description: "Tibetan, Chinese, Asian"},
		{ID: "r4", Name: "American Diner", Country: models.CountryAmerica, Description: "Breakfast, Sandwiches, American"},
		{ID: "r5", Name: "Burger Palace", Country: models.CountryAmerica, Description: "Burgers, Fast Food, American"},
		{ID: "r6", Name: "Taco Fiesta", Country: models.CountryAmerica, Description: "Mexican, Fast Food"},
	}
}

// seedMenuItems returns the menu catalog fixtures.
func seedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: "m1", RestaurantID: "r1", Name: "Butter Chicken", Description: "Creamy tomato curry", Price: 350, Country: models.CountryIndia},
		{ID: "m2", RestaurantID: "r1", Name: "Paneer Tikka", Description: "Grilled cottage cheese", Price: 280, Country: models.CountryIndia},
		{ID: "m3", RestaurantID: "r1", Name: "Biryani", Description: "Aromatic rice dish", Price: 320, Country: models.CountryIndia},
		{ID: "m4", RestaurantID: "r2", Name: "Naan", Description: "Indian bread", Price: 50, Country: models.CountryIndia},
		{ID: "m5", RestaurantID: "r2", Name: "Dal Makhani", Description: "Black lentil curry", Price: 250, Country: models.CountryIndia},
		{ID: "m6", RestaurantID: "r4", Name: "Pancakes", Description: "Fluffy breakfast pancakes", Price: 12, Country: models.CountryAmerica},
		{ID: "m7", RestaurantID: "r4", Name: "Club Sandwich", Description: "Triple-decker sandwich", Price: 15, Country: models.CountryAmerica},
		{ID: "m8", RestaurantID: "r4", Name: "Caesar Salad", Description: "Fresh romaine lettuce", Price: 10, Country: models.CountryAmerica},
		{ID: "m9", RestaurantID: "r5", Name: "Cheeseburger", Description: "Classic beef burger", Price: 18, Country: models.CountryAmerica},
		{ID: "m10", RestaurantID: "r5", Name: "French Fries", Description: "Crispy fries", Price: 6, Country: models.CountryAmerica},
	}
}

// seedPaymentMethods provisions default payment methods for the seed users.
func seedPaymentMethods(repo repositories.PaymentMethodRepository) {
	methods := []models.PaymentMethod{
		{ID: "pm1", UserID: "u1", Type: "credit_card", CardLast4: "4242", IsDefault: true},
		{ID: "pm2", UserID: "u2", Type: "credit_card", CardLast4: "1234", IsDefault: true},
	}
	for i := range methods {
		if err := repo.Create(&methods[i]); err != nil {
			log.Printf("Error seeding payment method %s: %v", methods[i].ID, err)
		}
	}
}
