package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWeather_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		weather Weather
		want    bool
	}{
		{"cold", WeatherCold, true},
		{"warm", WeatherWarm, true},
		{"hot", WeatherHot, true},
		{"empty", Weather(""), false},
		{"unknown", Weather("mild"), false},
		{"case_sensitive", Weather("Cold"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.weather.IsValid(); got != test.want {
				t.Errorf("expected %v, got %v", test.want, got)
			}
		})
	}
}

func TestItem_LikedBy(t *testing.T) {
	item := &Item{Likes: []string{"user-a", "user-b"}}

	if !item.LikedBy("user-a") {
		t.Error("expected user-a to be in like set")
	}
	if item.LikedBy("user-c") {
		t.Error("expected user-c to be absent from like set")
	}
}

func TestUser_PasswordHashNeverMarshaled(t *testing.T) {
	u := User{
		ID:           "01HZXW0000000000000000000X",
		Name:         "Ann",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret-hash",
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(data), "secret-hash") {
		t.Fatal("password hash leaked into JSON output")
	}
	if strings.Contains(strings.ToLower(string(data)), "password") {
		t.Fatal("password field present in JSON output")
	}
}
