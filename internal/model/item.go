package model

import (
	"slices"
	"time"
)

// Weather is the weather category an item is suited for.
type Weather string

const (
	WeatherCold Weather = "cold"
	WeatherWarm Weather = "warm"
	WeatherHot  Weather = "hot"
)

// IsValid checks if the weather category is one of the known values.
func (w Weather) IsValid() bool {
	return w == WeatherCold || w == WeatherWarm || w == WeatherHot
}

// Item represents a wearable item owned by a user.
// Likes is a set of user IDs; membership is unique and order is irrelevant.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weather   Weather   `json:"weather"`
	ImageURL  string    `json:"image_url"`
	OwnerID   string    `json:"owner_id"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikedBy reports whether userID is in the like set.
func (i *Item) LikedBy(userID string) bool {
	return slices.Contains(i.Likes, userID)
}

// OwnedBy reports whether userID created the item.
func (i *Item) OwnedBy(userID string) bool {
	return i.OwnerID == userID
}
